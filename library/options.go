package library

import (
	"github.com/google/uuid"
)

// Option defines a functional option for configuring a Library.
type Option func(*Library) error

// WithID sets the identifier of the Library instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(l *Library) error {
		if id == uuid.Nil {
			return ErrNilLibraryID
		}

		l.id = id

		return nil
	}
}

// WithBooks sets the initial, ordered sequence of books.
// Options are applied in order, so multiple WithBooks options append to each other.
func WithBooks(books ...*Book) Option {
	return func(l *Library) error {
		for _, book := range books {
			if book != nil {
				l.books = append(l.books, book)
			}
		}

		return nil
	}
}

// WithLogger sets the logger for the Library.
// Debug level: every appended book
// Warn level: ignored nil books.
func WithLogger(logger Logger) Option {
	return func(l *Library) error {
		l.logger = logger
		return nil
	}
}
