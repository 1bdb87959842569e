package library

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Library aggregates an ordered sequence of books and answers read-only queries about them.
//
// The insertion order of the books is significant: it determines the order of the query results.
// AddBook takes exclusive access, the queries share read access and may run concurrently.
type Library struct {
	id     uuid.UUID
	mu     sync.RWMutex
	books  []*Book
	logger Logger
}

// NewLibrary creates a Library configured by the given options.
// Without WithID, a time-ordered UUID (v7) is generated.
func NewLibrary(opts ...Option) (*Library, error) {
	l := &Library{
		books: []*Book{},
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	if l.id == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}

		l.id = id
	}

	l.logDebug(LogMsgLibraryCreated, LogAttrBookCount, len(l.books))

	return l, nil
}

// ID returns the identifier of the Library.
func (l *Library) ID() uuid.UUID {
	return l.id
}

// AddBook appends the book to the end of the owned sequence.
// There is no deduplication and no validation. A nil book is ignored.
func (l *Library) AddBook(book *Book) {
	if book == nil {
		l.logWarn(LogMsgNilBookIgnored)
		return
	}

	l.mu.Lock()
	l.books = append(l.books, book)
	count := len(l.books)
	l.mu.Unlock()

	l.logDebug(LogMsgBookAdded, LogAttrTitle, book.Title, LogAttrAuthor, book.Author, LogAttrBookCount, count)
}

// Books returns the owned books in insertion order.
// The returned slice is a copy, the books themselves are shared.
func (l *Library) Books() []*Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.books)
}

// Len returns the number of books.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.books)
}

// FindByAuthor returns the books whose author equals the given author exactly, in their original order.
// It returns an empty slice when nothing matches.
func (l *Library) FindByAuthor(author string) []*Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Filter(l.books, func(book *Book, _ int) bool {
		return book.Author == author
	})
}

// Genres returns the genres of all books, flattened in book order and deduplicated
// so that the first occurrence of each genre determines its position.
func (l *Library) Genres() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Uniq(lo.FlatMap(l.books, func(book *Book, _ int) []string {
		return book.Genres
	}))
}

// Titles returns one title per book in book order. Duplicate titles are preserved.
func (l *Library) Titles() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Map(l.books, func(book *Book, _ int) string {
		return book.Title
	})
}
