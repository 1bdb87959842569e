package library

import (
	"fmt"
	"slices"
)

// Book holds the descriptive data of one book.
// All fields can be read and written after construction.
type Book struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Genres        []string `json:"genres"`
	Pages         int      `json:"pages"`
	PublishedYear int      `json:"published_year"`
	Tags          []string `json:"tags"`
}

// BookOption defines a functional option for configuring optional Book fields.
type BookOption func(*Book)

// WithGenres sets the ordered genre labels of the Book.
func WithGenres(genres ...string) BookOption {
	return func(b *Book) {
		b.Genres = append(b.Genres, genres...)
	}
}

// WithTags sets the ordered tag labels of the Book.
func WithTags(tags ...string) BookOption {
	return func(b *Book) {
		b.Tags = append(b.Tags, tags...)
	}
}

// NewBook creates a Book. Genres and tags default to empty sequences.
//
// No validation happens here: an empty author or negative pages are accepted as given.
func NewBook(title string, author string, pages int, publishedYear int, opts ...BookOption) *Book {
	b := &Book{
		Title:         title,
		Author:        author,
		Genres:        []string{},
		Pages:         pages,
		PublishedYear: publishedYear,
		Tags:          []string{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// HasGenre reports whether the Book is labeled with the given genre.
func (b *Book) HasGenre(genre string) bool {
	return slices.Contains(b.Genres, genre)
}

// HasTag reports whether the Book is labeled with the given tag.
func (b *Book) HasTag(tag string) bool {
	return slices.Contains(b.Tags, tag)
}

// Validate checks the shape of the Book and returns an error wrapping ErrInvalidBook
// for the first offending field, or nil.
func (b *Book) Validate() error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: book is nil", ErrInvalidBook)
	case b.Title == "":
		return fmt.Errorf("%w: title is empty", ErrInvalidBook)
	case b.Author == "":
		return fmt.Errorf("%w: author is empty for %q", ErrInvalidBook, b.Title)
	case b.Pages < 0:
		return fmt.Errorf("%w: pages must not be negative, got %d for %q", ErrInvalidBook, b.Pages, b.Title)
	}

	return nil
}
