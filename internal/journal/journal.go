// Package journal implements the reading-journal commands.
//
// Each command is one transaction against the store: load the library,
// check the book index, then query or mutate, and save if anything changed.
// Nothing is cached between commands.
package journal

import (
	"fmt"

	"github.com/bw-notes/bw/internal/library"
	"github.com/bw-notes/bw/internal/store"
)

// Journal runs commands against one library document.
type Journal struct {
	store *store.Store
}

// New returns a Journal backed by s.
func New(s *store.Store) *Journal {
	return &Journal{store: s}
}

// NewBook appends an unstarted book and returns its index.
func (j *Journal) NewBook(name, author string) (int, error) {
	var index int

	err := j.store.Update(func(lib *library.Library) error {
		index = lib.AppendBook(name, author)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return index, nil
}

// DeleteBook removes the book at index and returns it. Every later book's
// index drops by one.
func (j *Journal) DeleteBook(index int) (library.Book, error) {
	var removed library.Book

	err := j.store.Update(func(lib *library.Library) error {
		book, err := lib.RemoveBookAt(index)
		if err != nil {
			return err
		}

		removed = book

		return nil
	})
	if err != nil {
		return library.Book{}, err
	}

	return removed, nil
}

// Note records a note on the book at index, from the book's cursor through
// endPage, and advances the cursor.
func (j *Journal) Note(index int, endPage uint16, text string) (library.Note, error) {
	return j.appendNote(func(lib *library.Library) (library.Note, error) {
		return lib.AppendNote(index, endPage, text)
	})
}

// FinishBook records final thoughts on the book at index and marks it
// finished.
func (j *Journal) FinishBook(index int, text string) (library.Note, error) {
	return j.appendNote(func(lib *library.Library) (library.Note, error) {
		return lib.Finish(index, text)
	})
}

func (j *Journal) appendNote(add func(lib *library.Library) (library.Note, error)) (library.Note, error) {
	var note library.Note

	err := j.store.Update(func(lib *library.Library) error {
		added, err := add(lib)
		if err != nil {
			return err
		}

		note = added

		return nil
	})
	if err != nil {
		return library.Note{}, err
	}

	return note, nil
}

// NoteForPage returns the first note on the book at index whose range
// contains page.
func (j *Journal) NoteForPage(index int, page uint16) (library.Note, error) {
	var note library.Note

	err := j.view(index, func(book *library.Book) error {
		found, err := book.NoteForPage(page)
		if err != nil {
			return err
		}

		note = found

		return nil
	})
	if err != nil {
		return library.Note{}, err
	}

	return note, nil
}

// ListBooks returns books with their indices in library order. Finished
// books are left out unless includeFinished is set.
func (j *Journal) ListBooks(includeFinished bool) ([]library.Listing, error) {
	var listings []library.Listing

	err := j.store.View(func(lib *library.Library) error {
		listings = lib.Listings(includeFinished)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listings, nil
}

// AllNotes returns the notes of the book at index at positions startNote,
// startNote+step, ... A startNote past the last note yields no notes. A
// zero step fails with [ErrInvalidArgument] once the index is known valid.
func (j *Journal) AllNotes(index, startNote, step int) ([]library.Note, error) {
	var notes []library.Note

	err := j.view(index, func(book *library.Book) error {
		walked, err := book.Walk(startNote, step)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		notes = walked

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Book returns the book at index.
func (j *Journal) Book(index int) (library.Book, error) {
	var book library.Book

	err := j.view(index, func(b *library.Book) error {
		book = *b

		return nil
	})
	if err != nil {
		return library.Book{}, err
	}

	return book, nil
}

// view loads the library, resolves index and runs handler on that book.
func (j *Journal) view(index int, handler func(book *library.Book) error) error {
	return j.store.View(func(lib *library.Library) error {
		book, err := lib.BookAt(index)
		if err != nil {
			return err
		}

		return handler(book)
	})
}
