package library

// Logger interface for operational logging, warnings, and error reporting.
// It is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const (
	// LogMsgLibraryCreated is logged when a Library was constructed.
	LogMsgLibraryCreated = "library created"

	// LogMsgBookAdded is logged when a book was appended to a Library.
	LogMsgBookAdded = "book added"

	// LogMsgNilBookIgnored is logged when AddBook was called with a nil book.
	LogMsgNilBookIgnored = "nil book ignored"

	// LogAttrLibraryID is the attribute key for the library identifier.
	LogAttrLibraryID = "library_id"

	// LogAttrTitle is the attribute key for a book title.
	LogAttrTitle = "title"

	// LogAttrAuthor is the attribute key for a book author.
	LogAttrAuthor = "author"

	// LogAttrBookCount is the attribute key for the number of books held by a Library.
	LogAttrBookCount = "book_count"
)

func (l *Library) logDebug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, append([]any{LogAttrLibraryID, l.id.String()}, args...)...)
	}
}

func (l *Library) logWarn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, append([]any{LogAttrLibraryID, l.id.String()}, args...)...)
	}
}
