package library

import (
	"encoding/json"
	"fmt"
)

// Book is a tracked reading target with its page cursor and notes.
// Notes are kept in the order they were written, which is reading order.
type Book struct {
	Name     string
	Author   string
	Progress Progress
	Notes    []Note
}

// IsFinished reports whether the book has been finished.
//
// Besides an explicit [Finished] progress, a book whose last note is a
// final-thoughts note counts as finished. Older documents never stored the
// finished cursor.
func (b *Book) IsFinished() bool {
	if b.Progress.State() == Finished {
		return true
	}

	return len(b.Notes) > 0 && b.Notes[len(b.Notes)-1].IsFinalThoughts()
}

// NoteForPage returns the first range note containing page, in insertion
// order.
func (b *Book) NoteForPage(page uint16) (Note, error) {
	for _, note := range b.Notes {
		if note.Contains(page) {
			return note, nil
		}
	}

	return Note{}, fmt.Errorf("%w: %d", ErrNoNoteForPage, page)
}

// Walk returns the notes at positions start, start+step, start+2*step...
// that are below the note count. A start past the end yields no notes.
func (b *Book) Walk(start, step int) ([]Note, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	if start < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNoteIndex, start)
	}

	var visited []Note

	for i := start; i < len(b.Notes); i += step {
		visited = append(visited, b.Notes[i])
	}

	return visited, nil
}

// appendNote records a note that starts at the current cursor and moves the
// cursor past end.
func (b *Book) appendNote(end uint16, text string) (Note, error) {
	if b.IsFinished() {
		return Note{}, ErrBookFinished
	}

	start := b.Progress.Cursor()

	if end >= FinalThoughtsEnd {
		return Note{}, fmt.Errorf("%w: end page %d is reserved", ErrInvalidPageRange, end)
	}

	if end < start {
		return Note{}, fmt.Errorf("%w: end page %d is before start page %d", ErrInvalidPageRange, end, start)
	}

	note := NewRangeNote(start, end, text)
	b.Notes = append(b.Notes, note)
	b.Progress = ProgressAt(end + 1)

	return note, nil
}

func (b *Book) finish(text string) (Note, error) {
	if b.IsFinished() {
		return Note{}, ErrBookFinished
	}

	note := NewFinalThoughts(b.Progress.Cursor(), text)
	b.Notes = append(b.Notes, note)
	b.Progress = FinishedProgress()

	return note, nil
}

// bookRecord is the stored shape of a book. Field order is the document's
// key order.
type bookRecord struct {
	Name   string `json:"name"   yaml:"name"`
	Author string `json:"author" yaml:"author"`
	Page   uint16 `json:"page"   yaml:"page"`
	Notes  []Note `json:"notes"  yaml:"notes"`
}

func (b Book) record() bookRecord {
	notes := b.Notes
	if notes == nil {
		notes = []Note{}
	}

	return bookRecord{
		Name:   b.Name,
		Author: b.Author,
		Page:   b.Progress.Cursor(),
		Notes:  notes,
	}
}

// MarshalJSON encodes b with its cursor sentinel. Notes encode as an
// empty array, never null.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.record())
}

// UnmarshalJSON decodes a stored book.
func (b *Book) UnmarshalJSON(data []byte) error {
	var rec bookRecord

	err := json.Unmarshal(data, &rec)
	if err != nil {
		return fmt.Errorf("book: %w", err)
	}

	*b = Book{
		Name:     rec.Name,
		Author:   rec.Author,
		Progress: ProgressAt(rec.Page),
		Notes:    rec.Notes,
	}

	if b.Notes == nil {
		b.Notes = []Note{}
	}

	return nil
}

// MarshalYAML encodes b the same way as MarshalJSON.
func (b Book) MarshalYAML() (any, error) {
	return b.record(), nil
}
