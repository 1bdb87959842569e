package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-matchers-go/library"
)

func Test_NewBook_DefaultsGenresAndTagsToEmpty(t *testing.T) {
	// act
	book := library.NewBook("Ruby-101", "Alice", 200, 2019)

	// assert
	assert.Equal(t, "Ruby-101", book.Title)
	assert.Equal(t, "Alice", book.Author)
	assert.Equal(t, 200, book.Pages)
	assert.Equal(t, 2019, book.PublishedYear)
	assert.NotNil(t, book.Genres)
	assert.Empty(t, book.Genres)
	assert.NotNil(t, book.Tags)
	assert.Empty(t, book.Tags)
}

func Test_NewBook_KeepsGenreAndTagOrder(t *testing.T) {
	// act
	book := library.NewBook(
		"RSpec-Mastery",
		"Bob",
		350,
		2021,
		library.WithGenres("Testing", "Programming"),
		library.WithTags("ruby", "advanced"),
	)

	// assert
	assert.Equal(t, []string{"Testing", "Programming"}, book.Genres)
	assert.Equal(t, []string{"ruby", "advanced"}, book.Tags)
}

func Test_NewBook_AcceptsMalformedInputWithoutComplaint(t *testing.T) {
	// act
	book := library.NewBook("", "", -5, -300)

	// assert
	assert.Empty(t, book.Author)
	assert.Equal(t, -5, book.Pages)
	assert.Equal(t, -300, book.PublishedYear)
}

func Test_Book_FieldsAreWritableAfterConstruction(t *testing.T) {
	// arrange
	book := library.NewBook("Ruby-101", "Alice", 200, 2019)

	// act
	book.Title = "Ruby-102"
	book.Pages = 220
	book.Genres = append(book.Genres, "Programming")

	// assert
	assert.Equal(t, "Ruby-102", book.Title)
	assert.Equal(t, 220, book.Pages)
	assert.True(t, book.HasGenre("Programming"))
}

func Test_Book_HasGenreAndHasTag(t *testing.T) {
	// arrange
	book := library.NewBook("Ruby-101", "Alice", 200, 2019,
		library.WithGenres("Programming"),
		library.WithTags("beginner"),
	)

	// assert
	assert.True(t, book.HasGenre("Programming"))
	assert.False(t, book.HasGenre("programming"))
	assert.True(t, book.HasTag("beginner"))
	assert.False(t, book.HasTag("advanced"))
}

func Test_Book_Validate(t *testing.T) {
	testCases := []struct {
		name          string
		book          *library.Book
		expectedError string
	}{
		{
			name: "valid book",
			book: library.NewBook("Ruby-101", "Alice", 200, 2019),
		},
		{
			name:          "nil book",
			book:          nil,
			expectedError: "book is nil",
		},
		{
			name:          "empty title",
			book:          library.NewBook("", "Alice", 200, 2019),
			expectedError: "title is empty",
		},
		{
			name:          "empty author",
			book:          library.NewBook("Ruby-101", "", 200, 2019),
			expectedError: "author is empty",
		},
		{
			name:          "negative pages",
			book:          library.NewBook("Ruby-101", "Alice", -1, 2019),
			expectedError: "pages must not be negative",
		},
		{
			name: "zero pages",
			book: library.NewBook("Ruby-101", "Alice", 0, 2019),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := tc.book.Validate()

			// assert
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, library.ErrInvalidBook)
			assert.ErrorContains(t, err, tc.expectedError)
		})
	}
}
