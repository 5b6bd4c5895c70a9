package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/books"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{"", Format(""), false},
		{"xml", Format(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
	assert.Equal(t, FormatJSON, DetectFormat("JSON"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	err := f.Format(&buf, []books.Book{
		{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"title": "Dune"`)
	assert.Contains(t, buf.String(), `"publication_year": 1965`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	err := f.Format(&buf, books.Stats{Total: 4, Read: 1, PercentRead: 25})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "total: 4")
	assert.Contains(t, buf.String(), "read: 1")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	data := BookData([]books.Book{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", PublicationYear: 1937, Genre: "Fantasy", Read: true},
	})
	err := f.Format(&buf, data)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "1937")
	assert.Contains(t, out, "Yes")
}

func TestBookData(t *testing.T) {
	data := BookData([]books.Book{
		{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Science Fiction"},
	})

	assert.Equal(t, []string{"Title", "Author", "Year", "Genre", "Read"}, data.Headers)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"Dune", "Frank Herbert", "1965", "Science Fiction", "No"}, data.Rows[0])
}

func TestStatsData(t *testing.T) {
	data := StatsData(books.Stats{Total: 4, Read: 1, PercentRead: 25})

	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"4", "1", "25.00%"}, data.Rows[0])
}

func TestStatsDataPercentPrecision(t *testing.T) {
	data := StatsData(books.Stats{Total: 3, Read: 1, PercentRead: 100.0 / 3})

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "33.33%", data.Rows[0][2])
}
