package output

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/bookshelf/pkg/books"
)

var titleCaser = cases.Title(language.English)

// ForBooks resolves the formatter for the requested format and shapes the
// book list for it. Table output gets tabular rows; structured formats get
// the records themselves.
func ForBooks(format string, list []books.Book) (Formatter, any) {
	resolved := DetectFormat(format)
	if resolved == FormatTable {
		return NewFormatter(resolved), BookData(list)
	}
	return NewFormatter(resolved), list
}

// ForStats resolves the formatter for the requested format and shapes the
// statistics for it.
func ForStats(format string, stats books.Stats) (Formatter, any) {
	resolved := DetectFormat(format)
	if resolved == FormatTable {
		return NewFormatter(resolved), StatsData(stats)
	}
	return NewFormatter(resolved), stats
}

// BookData converts a slice of books into tabular data.
func BookData(list []books.Book) Data {
	headers := []string{"title", "author", "year", "genre", "read"}
	for i, h := range headers {
		headers[i] = titleCaser.String(h)
	}

	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			b.Title,
			b.Author,
			strconv.Itoa(b.PublicationYear),
			b.Genre,
			readLabel(b.Read),
		})
	}

	return Data{Headers: headers, Rows: rows}
}

// StatsData converts library statistics into tabular data.
func StatsData(stats books.Stats) Data {
	headers := []string{"total books", "books read", "percent read"}
	for i, h := range headers {
		headers[i] = titleCaser.String(h)
	}

	return Data{
		Headers: headers,
		Rows: [][]string{{
			strconv.Itoa(stats.Total),
			strconv.Itoa(stats.Read),
			strconv.FormatFloat(stats.PercentRead, 'f', 2, 64) + "%",
		}},
	}
}

func readLabel(read bool) string {
	if read {
		return "Yes"
	}
	return "No"
}
