package library

import "errors"

var (
	// ErrInvalidBook is returned by Book.Validate when a required field is missing or out of range.
	ErrInvalidBook = errors.New("invalid book")

	// ErrNilLibraryID is returned when a Library is configured with the nil UUID.
	ErrNilLibraryID = errors.New("library id must not be the nil uuid")
)
