// Package search provides the command for searching the library.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search books by title or author",
		Long: `Search lists books whose title or author contains the keyword,
ignoring case. Without a keyword, every book is listed.`,
		Example: `  bookshelf search tolkien
  bookshelf search "dune"
  bookshelf search herbert -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.Join(args, " ")

			shelf, err := app.Shelf()
			if err != nil {
				return err
			}

			matches := shelf.Search(keyword)
			if len(matches) == 0 {
				cmd.Printf("No books matched %q.\n", keyword)
				return nil
			}

			formatter, data := output.ForBooks(app.OutputFormat(), matches)
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}
}
