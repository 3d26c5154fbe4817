// Package format renders journal data as the text shown to the reader.
//
// Everything here is a pure function of its inputs and the page-reference
// templates.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bw-notes/bw/internal/library"
)

// Fixed labels.
const (
	StatusJustStarted = "Just started"
	StatusDone        = "Done!"
	FinalThoughts     = "Final thoughts"
	NoNotesFound      = "No notes found =(\n"
)

// Column widths of a book listing line.
const (
	indexWidth  = 8
	nameWidth   = 37
	authorWidth = 19
)

// Templates decorate page numbers: prefix before the start page, infix
// between start and end, suffix after the end.
type Templates struct {
	PagePrefix string
	PageInfix  string
	PageSuffix string
}

// PageRange renders a note's range, e.g. "p.7-p.31".
func (t Templates) PageRange(note library.Note) string {
	return t.PagePrefix + strconv.Itoa(int(note.Start)) +
		t.PageInfix + strconv.Itoa(int(note.End)) + t.PageSuffix
}

// Status renders a book's progress.
func (t Templates) Status(p library.Progress) string {
	switch p.State() {
	case library.NotStarted:
		return StatusJustStarted
	case library.Finished:
		return StatusDone
	default:
		return t.PagePrefix + strconv.Itoa(int(p.Page())) + t.PageSuffix
	}
}

// BookLine renders one padded listing line: index, name, author, status.
// A finished book whose cursor was never moved to finished still shows as done.
func (t Templates) BookLine(index int, book library.Book) string {
	status := t.Status(book.Progress)
	if book.IsFinished() {
		status = StatusDone
	}

	return fmt.Sprintf("%-*d %-*s %-*s %s",
		indexWidth, index,
		nameWidth, book.Name,
		authorWidth, book.Author,
		status)
}

// BookList renders listing lines separated by newlines, with a trailing
// newline.
func (t Templates) BookList(listings []library.Listing) string {
	var b strings.Builder

	for i, l := range listings {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(t.BookLine(l.Index, l.Book))
	}

	b.WriteString("\n")

	return b.String()
}

// NoteForPage renders the answer to a page lookup: range line, then text.
func (t Templates) NoteForPage(note library.Note) string {
	return t.heading(note) + "\n" + note.Text + "\n"
}

// Notes renders a walk over a book's notes. Each note is a heading line,
// its text and a blank line. Final thoughts get a label instead of a range.
func (t Templates) Notes(notes []library.Note) string {
	if len(notes) == 0 {
		return NoNotesFound
	}

	var b strings.Builder

	for _, note := range notes {
		b.WriteString(t.heading(note))
		b.WriteString("\n")
		b.WriteString(note.Text)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Book renders a book header followed by all its notes.
func (t Templates) Book(index int, book library.Book) string {
	return t.BookLine(index, book) + "\n\n" + t.Notes(book.Notes)
}

func (t Templates) heading(note library.Note) string {
	if note.IsFinalThoughts() {
		return FinalThoughts
	}

	return t.PageRange(note)
}
