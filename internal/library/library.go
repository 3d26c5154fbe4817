// Package library holds the in-memory reading journal: books, their page
// cursors and their notes.
//
// Books are addressed by position. Removing a book shifts every later book
// down by one, so any index handed out before a removal is stale afterwards.
package library

import (
	"encoding/json"
	"fmt"
)

// Library is the ordered collection of books, the unit of persistence.
type Library struct {
	Books []Book
}

// New returns an empty library.
func New() *Library {
	return &Library{Books: []Book{}}
}

// Len returns the number of books.
func (l *Library) Len() int { return len(l.Books) }

// BookAt returns the book at index.
func (l *Library) BookAt(index int) (*Book, error) {
	if index < 0 || index >= len(l.Books) {
		return nil, fmt.Errorf("%w: %d (library has %d books)", ErrBookIndexOutOfRange, index, len(l.Books))
	}

	return &l.Books[index], nil
}

// AppendBook adds an unstarted book with no notes and returns its index.
func (l *Library) AppendBook(name, author string) int {
	l.Books = append(l.Books, Book{
		Name:   name,
		Author: author,
		Notes:  []Note{},
	})

	return len(l.Books) - 1
}

// RemoveBookAt removes the book at index and returns it.
func (l *Library) RemoveBookAt(index int) (Book, error) {
	book, err := l.BookAt(index)
	if err != nil {
		return Book{}, err
	}

	removed := *book
	l.Books = append(l.Books[:index], l.Books[index+1:]...)

	return removed, nil
}

// AppendNote records a note on the book at index covering the book's cursor
// through end, then moves the cursor to end+1. Callers never choose the
// start page.
func (l *Library) AppendNote(index int, end uint16, text string) (Note, error) {
	book, err := l.BookAt(index)
	if err != nil {
		return Note{}, err
	}

	note, err := book.appendNote(end, text)
	if err != nil {
		return Note{}, fmt.Errorf("book %d: %w", index, err)
	}

	return note, nil
}

// Finish records final thoughts on the book at index and marks it finished.
func (l *Library) Finish(index int, text string) (Note, error) {
	book, err := l.BookAt(index)
	if err != nil {
		return Note{}, err
	}

	note, err := book.finish(text)
	if err != nil {
		return Note{}, fmt.Errorf("book %d: %w", index, err)
	}

	return note, nil
}

// MarshalJSON encodes the library as a plain array of books.
func (l *Library) MarshalJSON() ([]byte, error) {
	books := l.Books
	if books == nil {
		books = []Book{}
	}

	return json.Marshal(books)
}

// UnmarshalJSON decodes a plain array of books.
func (l *Library) UnmarshalJSON(data []byte) error {
	var books []Book

	err := json.Unmarshal(data, &books)
	if err != nil {
		return err
	}

	if books == nil {
		books = []Book{}
	}

	l.Books = books

	return nil
}

// Listing pairs a book with its position in the library.
type Listing struct {
	Index int
	Book  Book
}

// Listings returns every book with its index, in library order. Finished
// books are skipped unless includeFinished is set; indices are never
// renumbered.
func (l *Library) Listings(includeFinished bool) []Listing {
	listings := make([]Listing, 0, len(l.Books))

	for i, book := range l.Books {
		if !includeFinished && book.IsFinished() {
			continue
		}

		listings = append(listings, Listing{Index: i, Book: book})
	}

	return listings
}
