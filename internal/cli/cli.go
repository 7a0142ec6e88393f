// Package cli implements the libcheck command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/libcheck/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and env var prefixes.
	appName = "libcheck"

	// EnvMetadata is the legacy env var naming the metadata document path.
	EnvMetadata = "LIBCHECK_METADATA"

	// EnvPackage is the legacy env var naming the package to query.
	EnvPackage = "LIBCHECK_PACKAGE"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
// The writer should be the error stream: standard output is reserved for the
// machine-readable result lines.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself performs the lookup, so the canonical CI invocation
// stays `libcheck <metadata-file> <package>`.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "libcheck <metadata-file> <package>",
		Short: "Libcheck reports whether a package produces a library target",
		Long: `Libcheck answers one question for CI pipelines: does a named package in a
build-metadata document produce a library target? It prints exactly one line,
"true" or "false", on standard output and always exits successfully; all
diagnostics go to the error stream.

The metadata document is the JSON emitted by a build-introspection tool such
as "cargo metadata --format-version 1". Pass "-" as the file to read it from
standard input, or pass a Cargo.toml to inspect the manifest directly. With no
arguments, the ` + EnvMetadata + ` and ` + EnvPackage + ` environment
variables are consulted instead.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.targetsCommand())
	root.AddCommand(c.packagesCommand())
	root.AddCommand(c.completionCommand())

	return root
}
