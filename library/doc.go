// Package library contains the domain model for the example:
// Books held by a public library.
//
// The model is deliberately small. A Book is a plain value holder with exported, mutable fields,
// and a Library is the aggregate that owns an ordered sequence of books and answers derived,
// read-only queries about them:
//
//   - FindByAuthor selects the books of one author, preserving their order
//   - Genres flattens the genres of all books and removes duplicates, keeping first occurrences
//   - Titles maps every book to its title, duplicates included
//
// Construction is permissive: required fields are not validated. Callers who want shape validation
// can call Book.Validate explicitly.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package library
