// Package list provides the command for listing the library contents.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book in the library",
		Long: `List displays every book in the library in the order the books
were added.`,
		Example: `  bookshelf list
  bookshelf list -o yaml
  bookshelf list --library books.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shelf, err := app.Shelf()
			if err != nil {
				return err
			}

			all := shelf.List()
			if len(all) == 0 {
				cmd.Println("The library is empty.")
				return nil
			}

			formatter, data := output.ForBooks(app.OutputFormat(), all)
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}
}
