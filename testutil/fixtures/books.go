package fixtures

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-matchers-go/library"
)

const (
	// AuthorAlice writes Ruby-101 and Gardening-Basics.
	AuthorAlice = "Alice"

	// AuthorBob writes RSpec-Mastery.
	AuthorBob = "Bob"
)

// Ruby101 returns the book "Ruby-101" by Alice.
func Ruby101() *library.Book {
	return library.NewBook(
		"Ruby-101",
		AuthorAlice,
		200,
		2019,
		library.WithGenres("Programming", "Education"),
		library.WithTags("beginner", "ruby"),
	)
}

// RSpecMastery returns the book "RSpec-Mastery" by Bob.
func RSpecMastery() *library.Book {
	return library.NewBook(
		"RSpec-Mastery",
		AuthorBob,
		350,
		2021,
		library.WithGenres("Programming", "Testing"),
		library.WithTags("advanced", "ruby", "testing"),
	)
}

// GardeningBasics returns the book "Gardening-Basics" by Alice.
func GardeningBasics() *library.Book {
	return library.NewBook(
		"Gardening-Basics",
		AuthorAlice,
		120,
		2015,
		library.WithGenres("Hobby", "Outdoors"),
		library.WithTags("beginner"),
	)
}

// ProgrammingEducationBook returns a book with the genres ["Programming" "Education"].
func ProgrammingEducationBook() *library.Book {
	return library.NewBook("Book A", "Author A", 100, 2000, library.WithGenres("Programming", "Education"))
}

// ProgrammingTestingBook returns a book with the genres ["Programming" "Testing"].
func ProgrammingTestingBook() *library.Book {
	return library.NewBook("Book B", "Author B", 100, 2000, library.WithGenres("Programming", "Testing"))
}

// HobbyOutdoorsBook returns a book with the genres ["Hobby" "Outdoors"].
func HobbyOutdoorsBook() *library.Book {
	return library.NewBook("Book C", "Author C", 100, 2000, library.WithGenres("Hobby", "Outdoors"))
}

// DemoBooks returns Ruby-101, RSpec-Mastery and Gardening-Basics, in this order.
func DemoBooks() []*library.Book {
	return []*library.Book{Ruby101(), RSpecMastery(), GardeningBasics()}
}

// GivenLibraryWith creates a Library holding the given books in order.
func GivenLibraryWith(t testing.TB, books ...*library.Book) *library.Library {
	t.Helper()

	lib, err := library.NewLibrary(library.WithBooks(books...))
	require.NoError(t, err, "error in arranging test data")

	return lib
}

// GivenUniqueID returns a fresh time-ordered UUID.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}
