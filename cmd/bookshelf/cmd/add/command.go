// Package add provides the command for adding books to the library.
package add

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the add command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the library",
		Long: `Add appends a book to the library and saves the file immediately.

When run without flags in a terminal, an interactive form collects the
book details. Otherwise the book is built from flags; --title and
--author are required.`,
		Example: `  bookshelf add                                          # interactive form
  bookshelf add --title "Dune" --author "Frank Herbert" --year 1965 --genre "Science Fiction"
  bookshelf add --title "The Hobbit" --author "J.R.R. Tolkien" --read`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, err := bookFromFlags(cmd)
			if err != nil {
				return err
			}

			if book.Title == "" && interactive() {
				if err := fillBookForm(&book); err != nil {
					return err
				}
			}

			shelf, err := app.Shelf()
			if err != nil {
				return err
			}

			if err := shelf.Add(book); err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithOperation(ctx, "add")
			ctx = logging.WithTitle(ctx, book.Title)
			logging.Ctx(ctx).Debug().
				Str("author", book.Author).
				Msg("Book added")

			cmd.Printf("Added %q by %s.\n", book.Title, book.Author)
			return nil
		},
	}

	cmd.Flags().String("title", "", "book title")
	cmd.Flags().String("author", "", "book author")
	cmd.Flags().Int("year", 0, "publication year")
	cmd.Flags().String("genre", "", "book genre")
	cmd.Flags().Bool("read", false, "mark the book as read")

	return cmd
}

// bookFromFlags builds a book record from command flags.
func bookFromFlags(cmd *cobra.Command) (books.Book, error) {
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return books.Book{}, err
	}
	author, err := cmd.Flags().GetString("author")
	if err != nil {
		return books.Book{}, err
	}
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return books.Book{}, err
	}
	genre, err := cmd.Flags().GetString("genre")
	if err != nil {
		return books.Book{}, err
	}
	read, err := cmd.Flags().GetBool("read")
	if err != nil {
		return books.Book{}, err
	}

	return books.Book{
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		PublicationYear: year,
		Genre:           strings.TrimSpace(genre),
		Read:            read,
	}, nil
}

// fillBookForm collects book details interactively.
func fillBookForm(book *books.Book) error {
	var yearStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&book.Title).
				Validate(requireValue("title")),
			huh.NewInput().
				Title("Author").
				Value(&book.Author).
				Validate(requireValue("author")),
			huh.NewInput().
				Title("Publication Year").
				Value(&yearStr).
				Validate(validYear),
			huh.NewInput().
				Title("Genre").
				Value(&book.Genre),
			huh.NewConfirm().
				Title("Have you read it?").
				Value(&book.Read),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if yearStr != "" {
		year, err := strconv.Atoi(strings.TrimSpace(yearStr))
		if err != nil {
			return errors.WrapValidation("publication_year", err)
		}
		book.PublicationYear = year
	}

	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.Genre = strings.TrimSpace(book.Genre)

	return nil
}

func requireValue(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validYear(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if year < 0 {
		return fmt.Errorf("year cannot be negative")
	}
	return nil
}

// interactive reports whether stdin and stdout are attached to a terminal.
func interactive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
