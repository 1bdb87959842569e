package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-matchers-go/library"
)

// Report is the result of running all queries against one library.
type Report struct {
	LibraryID     string          `json:"library_id"`
	Titles        []string        `json:"titles"`
	Genres        []string        `json:"genres"`
	Author        string          `json:"author"`
	BooksByAuthor []*library.Book `json:"books_by_author"`
}

// BuildReport runs the queries of the library.
func BuildReport(lib *library.Library, author string) Report {
	return Report{
		LibraryID:     lib.ID().String(),
		Titles:        lib.Titles(),
		Genres:        lib.Genres(),
		Author:        author,
		BooksByAuthor: lib.FindByAuthor(author),
	}
}

func writeJSON(w io.Writer, report Report) error {
	data, err := jsoniter.ConfigFastest.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeText(w io.Writer, report Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "library: %s\n", report.LibraryID)
	fmt.Fprintf(&b, "titles:  %s\n", strings.Join(report.Titles, ", "))
	fmt.Fprintf(&b, "genres:  %s\n", strings.Join(report.Genres, ", "))
	fmt.Fprintf(&b, "books by %s:\n", report.Author)

	if len(report.BooksByAuthor) == 0 {
		b.WriteString("  (none)\n")
	}

	for _, book := range report.BooksByAuthor {
		fmt.Fprintf(&b, "  - %s (%d pages, %d)\n", book.Title, book.Pages, book.PublishedYear)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
