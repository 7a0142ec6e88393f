package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/libcheck/pkg/errors"
	"github.com/matzehuels/libcheck/pkg/manifest"
	"github.com/matzehuels/libcheck/pkg/metadata"
)

// stdinPath is the pseudo-path selecting standard input as metadata source.
const stdinPath = "-"

// checkCommand creates the explicit "check" subcommand. It is an alias for
// the root invocation, kept so scripts can be explicit about intent.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <metadata-file> <package>",
		Short: "Report whether a package produces a library target",
		Long: `Check scans the metadata document for the first package with the given name
and prints "true" if any of its targets carries the "lib" kind, "false"
otherwise. Missing packages, missing inputs, and unreadable or malformed
documents all print "false"; the process never fails.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args)
		},
	}
}

// runCheck implements the lookup contract: exactly one "true"/"false" line on
// standard output, diagnostics on the error stream, and a nil error on every
// path so the process always exits successfully.
func (c *CLI) runCheck(cmd *cobra.Command, args []string) error {
	source, pkg, ok := c.checkInputs(args)
	if !ok {
		printResult(cmd.OutOrStdout(), false)
		return nil
	}

	prog := newProgress(c.Logger)
	has, err := c.lookup(cmd, source, pkg)
	if err != nil {
		c.Logger.Error(errors.UserMessage(err), "code", errors.GetCode(err))
		printResult(cmd.OutOrStdout(), false)
		return nil
	}
	prog.done(fmt.Sprintf("Checked %s for a lib target of %s", source, pkg))

	printResult(cmd.OutOrStdout(), has)
	return nil
}

// checkInputs resolves the metadata source and package name from positional
// arguments, falling back to the legacy environment variables when no
// arguments were given. The third return is false if the input is incomplete,
// in which case a usage hint has already been logged.
func (c *CLI) checkInputs(args []string) (source, pkg string, ok bool) {
	switch len(args) {
	case 2:
		return args[0], args[1], true
	case 0:
		source, pkg = os.Getenv(EnvMetadata), os.Getenv(EnvPackage)
		if source != "" && pkg != "" {
			c.Logger.Debug("using environment variables", "metadata", source, "package", pkg)
			return source, pkg, true
		}
	}
	c.Logger.Error("missing input",
		"usage", appName+" <metadata-file> <package>",
		"env", EnvMetadata+", "+EnvPackage)
	return "", "", false
}

// lookup answers the lib-target question for one source/package pair.
// Cargo.toml sources are inspected directly; everything else is decoded as a
// metadata document.
func (c *CLI) lookup(cmd *cobra.Command, source, pkg string) (bool, error) {
	if manifest.Supports(source) {
		c.Logger.Debug("inspecting manifest directly", "path", source)
		return manifest.HasLibTarget(source, pkg)
	}

	doc, err := c.loadDocument(cmd, source)
	if err != nil {
		return false, err
	}
	return doc.HasLibTarget(pkg), nil
}

// loadDocument reads and decodes the metadata document from source.
// A source of "-" reads from the command's standard input.
func (c *CLI) loadDocument(cmd *cobra.Command, source string) (*metadata.Document, error) {
	r, err := openSource(cmd, source)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return metadata.Decode(r)
}

// openSource returns a ReadCloser for the metadata source.
func openSource(cmd *cobra.Command, source string) (io.ReadCloser, error) {
	if source == stdinPath {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read metadata %s", source)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read metadata %s", source)
	}
	return f, nil
}

// printResult writes the single stdout line CI consumers read.
func printResult(w io.Writer, has bool) {
	fmt.Fprintln(w, strconv.FormatBool(has))
}
