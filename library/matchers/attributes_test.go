package matchers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-matchers-go/library"
	"github.com/AntonStoeckl/library-matchers-go/library/matchers"
	"github.com/AntonStoeckl/library-matchers-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-matchers-go/testutil/helper"
)

func Test_HaveAttributes_MatchesOnlySetAttributes(t *testing.T) {
	// arrange
	book := fixtures.Ruby101()

	testCases := []struct {
		name    string
		attrs   matchers.BookAttributes
		matches bool
	}{
		{
			name:    "no attributes",
			attrs:   matchers.Attributes().Finalize(),
			matches: true,
		},
		{
			name:    "title and author",
			attrs:   matchers.Attributes().Title("Ruby-101").Author(fixtures.AuthorAlice).Finalize(),
			matches: true,
		},
		{
			name: "all attributes",
			attrs: matchers.Attributes().
				Title("Ruby-101").
				Author(fixtures.AuthorAlice).
				Genres("Programming", "Education").
				Pages(200).
				PublishedYear(2019).
				Tags("beginner", "ruby").
				Finalize(),
			matches: true,
		},
		{
			name:    "wrong pages",
			attrs:   matchers.Attributes().Title("Ruby-101").Pages(201).Finalize(),
			matches: false,
		},
		{
			name:    "genres in different order",
			attrs:   matchers.Attributes().Genres("Education", "Programming").Finalize(),
			matches: false,
		},
		{
			name:    "empty tags",
			attrs:   matchers.Attributes().Tags().Finalize(),
			matches: false,
		},
		{
			name:    "last value wins",
			attrs:   matchers.Attributes().Author(fixtures.AuthorBob).Author(fixtures.AuthorAlice).Finalize(),
			matches: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := matchers.HaveAttributes(book, tc.attrs)

			// assert
			assert.Equal(t, tc.matches, result.Matched(), result.FailureMessage())
		})
	}
}

func Test_HaveAttributes_EmptyGenresMatchBookWithoutGenres(t *testing.T) {
	// arrange
	book := library.NewBook("Plain", "Nobody", 10, 2000)

	// act & assert
	helper.AssertMatch(t, matchers.HaveAttributes(book, matchers.Attributes().Genres().Tags().Finalize()))
}

func Test_HaveAttributes_ReportsEveryMismatch(t *testing.T) {
	// arrange
	book := fixtures.RSpecMastery()
	attrs := matchers.Attributes().Title("RSpec-Mastery").Author(fixtures.AuthorAlice).Pages(300).Finalize()

	// act
	result := matchers.HaveAttributes(book, attrs)

	// assert
	assert.False(t, result.Matched())
	assert.Equal(t,
		`expected to have attributes {title="RSpec-Mastery" author="Alice" pages=300}, but author was "Bob", pages were 350`,
		result.FailureMessage(),
	)
}

func Test_HaveAttributes_NilBookNeverMatches(t *testing.T) {
	// act
	result := matchers.HaveAttributes(nil, matchers.Attributes().Finalize())

	// assert
	assert.False(t, result.Matched())
	assert.Contains(t, result.FailureMessage(), "book was nil")
}

func Test_HaveAttributes_SeesMutationsAfterConstruction(t *testing.T) {
	// arrange
	book := fixtures.Ruby101()
	book.Author = fixtures.AuthorBob

	// act & assert
	helper.AssertMatch(t, matchers.HaveAttributes(book, matchers.Attributes().Author(fixtures.AuthorBob).Finalize()))
}

func Test_BookAttributes_IsEmpty(t *testing.T) {
	assert.True(t, matchers.Attributes().Finalize().IsEmpty())
	assert.False(t, matchers.Attributes().Genres().Finalize().IsEmpty())
	assert.False(t, matchers.Attributes().PublishedYear(0).Finalize().IsEmpty())
}

func Test_IncludeBookWith(t *testing.T) {
	// arrange
	lib := fixtures.GivenLibraryWith(t, fixtures.DemoBooks()...)

	// act
	found := matchers.IncludeBookWith(lib.FindByAuthor(fixtures.AuthorAlice),
		matchers.Attributes().Title("Gardening-Basics").Pages(120).Finalize())
	notFound := matchers.IncludeBookWith(lib.FindByAuthor(fixtures.AuthorAlice),
		matchers.Attributes().Title("RSpec-Mastery").Finalize())

	// assert
	helper.AssertMatch(t, found)
	assert.False(t, notFound.Matched())
	assert.Contains(t, notFound.FailureMessage(), `none of ["Ruby-101" "Gardening-Basics"] has them`)
}

func Test_FindByAuthor_WithAttributeMatchers(t *testing.T) {
	// arrange
	lib := fixtures.GivenLibraryWith(t, fixtures.DemoBooks()...)

	// act
	found := lib.FindByAuthor(fixtures.AuthorAlice)

	// assert
	helper.RequireMatch(t, matchers.HaveLength(found, 2))
	helper.AssertMatch(t, matchers.HaveAttributes(found[0], matchers.Attributes().Title("Ruby-101").Pages(200).Finalize()))
	helper.AssertMatch(t, matchers.HaveAttributes(found[1], matchers.Attributes().Title("Gardening-Basics").Pages(120).Finalize()))
	helper.AssertMatch(t, matchers.AllSatisfy(found, "be written by Alice", func(b *library.Book) bool {
		return b.Author == fixtures.AuthorAlice
	}))
}
