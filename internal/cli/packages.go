package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/libcheck/pkg/errors"
)

// packagesCommand creates the "packages" subcommand, which lists all package
// names in document order. Duplicates are preserved so operators can spot
// multi-manifest name collisions.
func (c *CLI) packagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packages <metadata-file>",
		Short: "List all package names in a metadata document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(cmd, args[0])
			if err != nil {
				c.Logger.Error(errors.UserMessage(err), "code", errors.GetCode(err))
				return nil
			}

			for _, pkg := range doc.Packages {
				fmt.Fprintln(cmd.OutOrStdout(), pkg.Name)
			}

			printDetail("%d packages", len(doc.Packages))
			return nil
		},
	}
}
