package matchers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/AntonStoeckl/library-matchers-go/library"
)

/***** BookAttributes *****/

// BookAttributes is a partial description of a Book: only the attributes which were set
// take part in a comparison. It replaces reflective "has these attributes" checks
// with explicit per-field comparisons.
type BookAttributes struct {
	title         *string
	author        *string
	genres        []string
	genresSet     bool
	pages         *int
	publishedYear *int
	tags          []string
	tagsSet       bool
}

// IsEmpty returns true if no attribute was set. Empty attributes match every non-nil Book.
func (a BookAttributes) IsEmpty() bool {
	return a.title == nil && a.author == nil && !a.genresSet && a.pages == nil && a.publishedYear == nil && !a.tagsSet
}

func (a BookAttributes) String() string {
	parts := make([]string, 0, 6)

	if a.title != nil {
		parts = append(parts, fmt.Sprintf("title=%q", *a.title))
	}
	if a.author != nil {
		parts = append(parts, fmt.Sprintf("author=%q", *a.author))
	}
	if a.genresSet {
		parts = append(parts, "genres="+formatElements(a.genres))
	}
	if a.pages != nil {
		parts = append(parts, fmt.Sprintf("pages=%d", *a.pages))
	}
	if a.publishedYear != nil {
		parts = append(parts, fmt.Sprintf("published_year=%d", *a.publishedYear))
	}
	if a.tagsSet {
		parts = append(parts, "tags="+formatElements(a.tags))
	}

	return "{" + strings.Join(parts, " ") + "}"
}

// mismatches lists every set attribute which differs from the book.
func (a BookAttributes) mismatches(book *library.Book) []string {
	var diffs []string

	if a.title != nil && book.Title != *a.title {
		diffs = append(diffs, fmt.Sprintf("title was %q", book.Title))
	}
	if a.author != nil && book.Author != *a.author {
		diffs = append(diffs, fmt.Sprintf("author was %q", book.Author))
	}
	if a.genresSet && !slices.Equal(book.Genres, a.genres) {
		diffs = append(diffs, "genres were "+formatElements(book.Genres))
	}
	if a.pages != nil && book.Pages != *a.pages {
		diffs = append(diffs, fmt.Sprintf("pages were %d", book.Pages))
	}
	if a.publishedYear != nil && book.PublishedYear != *a.publishedYear {
		diffs = append(diffs, fmt.Sprintf("published_year was %d", book.PublishedYear))
	}
	if a.tagsSet && !slices.Equal(book.Tags, a.tags) {
		diffs = append(diffs, "tags were "+formatElements(book.Tags))
	}

	return diffs
}

/***** BookAttributesBuilder *****/

// BookAttributesBuilder assembles BookAttributes fluently:
//
//	matchers.Attributes().Title("Ruby-101").Author("Alice").Pages(200).Finalize()
//
// Setting the same attribute twice keeps the last value.
type BookAttributesBuilder struct {
	attrs BookAttributes
}

// Attributes starts a new, empty BookAttributes description.
func Attributes() BookAttributesBuilder {
	return BookAttributesBuilder{}
}

// Title expects the given title.
func (b BookAttributesBuilder) Title(title string) BookAttributesBuilder {
	b.attrs.title = &title
	return b
}

// Author expects the given author.
func (b BookAttributesBuilder) Author(author string) BookAttributesBuilder {
	b.attrs.author = &author
	return b
}

// Genres expects exactly the given genres, in order.
func (b BookAttributesBuilder) Genres(genres ...string) BookAttributesBuilder {
	b.attrs.genres = slices.Clone(genres)
	b.attrs.genresSet = true
	return b
}

// Pages expects the given page count.
func (b BookAttributesBuilder) Pages(pages int) BookAttributesBuilder {
	b.attrs.pages = &pages
	return b
}

// PublishedYear expects the given year of publication.
func (b BookAttributesBuilder) PublishedYear(year int) BookAttributesBuilder {
	b.attrs.publishedYear = &year
	return b
}

// Tags expects exactly the given tags, in order.
func (b BookAttributesBuilder) Tags(tags ...string) BookAttributesBuilder {
	b.attrs.tags = slices.Clone(tags)
	b.attrs.tagsSet = true
	return b
}

// Finalize returns the assembled BookAttributes.
func (b BookAttributesBuilder) Finalize() BookAttributes {
	return b.attrs
}

/***** Attribute matchers *****/

// HaveAttributes matches when the book has all the set attributes. A nil book never matches.
// On failure, every mismatching attribute is reported.
func HaveAttributes(book *library.Book, attrs BookAttributes) Result {
	description := "have attributes " + attrs.String()

	if book == nil {
		return failed(description, "book was nil")
	}

	if diffs := attrs.mismatches(book); len(diffs) > 0 {
		return failed(description, "%s", strings.Join(diffs, ", "))
	}

	return matched(description)
}

// IncludeBookWith matches when at least one of the books has all the set attributes.
func IncludeBookWith(books []*library.Book, attrs BookAttributes) Result {
	description := "include a book with attributes " + attrs.String()

	found := lo.ContainsBy(books, func(book *library.Book) bool {
		return HaveAttributes(book, attrs).Matched()
	})

	if !found {
		titles := lo.FilterMap(books, func(book *library.Book, _ int) (string, bool) {
			if book == nil {
				return "", false
			}

			return book.Title, true
		})

		return failed(description, "none of %s has them", formatElements(titles))
	}

	return matched(description)
}
