package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/libcheck/pkg/errors"
)

// targetsCommand creates the "targets" subcommand, which lists the build
// targets of the first matching package. CI operators use it to see why a
// check came back false.
func (c *CLI) targetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets <metadata-file> <package>",
		Short: "List the build targets of a package",
		Long: `Targets prints the build targets of the first package with the given name,
one per line as "<name>\t<kind,kind,...>". Rows go to standard output; the
styled summary goes to the error stream so the rows stay machine-readable.
Errors are diagnostics only; the process still exits successfully.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(cmd, args[0])
			if err != nil {
				c.Logger.Error(errors.UserMessage(err), "code", errors.GetCode(err))
				return nil
			}

			pkg, ok := doc.Package(args[1])
			if !ok {
				c.Logger.Error("package not found", "package", args[1], "code", errors.ErrCodePackageNotFound)
				return nil
			}

			for _, t := range pkg.Targets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.Name, strings.Join(t.Kind, ","))
			}

			if pkg.HasLibTarget() {
				printSuccess("%s produces a lib target", pkg.Name)
			} else {
				printNegative("%s has no lib target (%d targets)", pkg.Name, len(pkg.Targets))
			}
			return nil
		},
	}
}
