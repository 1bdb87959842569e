package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/AntonStoeckl/library-matchers-go/library"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		log.Fatalf("library-report: %v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	lib, err := library.NewLibrary(library.WithLogger(logger))
	if err != nil {
		return err
	}

	for _, book := range demoBooks() {
		if validationErr := book.Validate(); validationErr != nil {
			logger.Warn("book failed validation", "error", validationErr.Error())
		}

		lib.AddBook(book)
	}

	report := BuildReport(lib, cfg.Author)
	logger.Info("report built",
		library.LogAttrLibraryID, report.LibraryID,
		library.LogAttrBookCount, lib.Len(),
		library.LogAttrAuthor, cfg.Author,
	)

	if cfg.Format == formatText {
		return writeText(stdout, report)
	}

	return writeJSON(stdout, report)
}

// demoBooks returns the books of the demo library, in insertion order.
func demoBooks() []*library.Book {
	return []*library.Book{
		library.NewBook("Ruby-101", "Alice", 200, 2019,
			library.WithGenres("Programming", "Education"),
			library.WithTags("beginner", "ruby"),
		),
		library.NewBook("RSpec-Mastery", "Bob", 350, 2021,
			library.WithGenres("Programming", "Testing"),
			library.WithTags("advanced", "ruby", "testing"),
		),
		library.NewBook("Gardening-Basics", "Alice", 120, 2015,
			library.WithGenres("Hobby", "Outdoors"),
			library.WithTags("beginner"),
		),
	}
}
