package format_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bw-notes/bw/internal/format"
	"github.com/bw-notes/bw/internal/library"
)

var defaultTemplates = format.Templates{PagePrefix: "p.", PageInfix: "-p.", PageSuffix: ""}

func TestPageRange(t *testing.T) {
	t.Parallel()

	note := library.NewRangeNote(7, 31, "x")

	if got, want := defaultTemplates.PageRange(note), "p.7-p.31"; got != want {
		t.Errorf("PageRange=%q, want=%q", got, want)
	}

	custom := format.Templates{PagePrefix: "[", PageInfix: "..", PageSuffix: "]"}
	if got, want := custom.PageRange(note), "[7..31]"; got != want {
		t.Errorf("PageRange=%q, want=%q", got, want)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		cursor uint16
		want   string
	}{
		{cursor: 0, want: "Just started"},
		{cursor: 65535, want: "Done!"},
		{cursor: 31, want: "p.31"},
	} {
		if got := defaultTemplates.Status(library.ProgressAt(tt.cursor)); got != tt.want {
			t.Errorf("Status(%d)=%q, want=%q", tt.cursor, got, tt.want)
		}
	}
}

func TestBookList_PadsColumnsAndKeepsIndices(t *testing.T) {
	t.Parallel()

	listings := []library.Listing{
		{Index: 0, Book: library.Book{Name: "Dune", Author: "Herbert", Progress: library.ProgressAt(31)}},
		{Index: 2, Book: library.Book{Name: "Solaris", Author: "Lem"}},
	}

	want := "0        Dune                                  Herbert             p.31\n" +
		"2        Solaris                               Lem                 Just started\n"

	if diff := cmp.Diff(want, defaultTemplates.BookList(listings)); diff != "" {
		t.Fatalf("BookList mismatch (-want +got):\n%s", diff)
	}
}

func TestBookLine_LegacyFinishedBookShowsDone(t *testing.T) {
	t.Parallel()

	book := library.Book{
		Name:     "Old",
		Author:   "X",
		Progress: library.ProgressAt(61),
		Notes:    []library.Note{library.NewFinalThoughts(61, "bye")},
	}

	want := "1        Old                                   X                   Done!"
	if got := defaultTemplates.BookLine(1, book); got != want {
		t.Fatalf("BookLine=%q, want=%q", got, want)
	}
}

func TestNoteForPage(t *testing.T) {
	t.Parallel()

	got := defaultTemplates.NoteForPage(library.NewRangeNote(31, 60, "middle"))
	if want := "p.31-p.60\nmiddle\n"; got != want {
		t.Fatalf("NoteForPage=%q, want=%q", got, want)
	}
}

func TestNotes(t *testing.T) {
	t.Parallel()

	notes := []library.Note{
		library.NewRangeNote(0, 30, "intro"),
		library.NewFinalThoughts(31, "great book"),
	}

	want := "p.0-p.30\nintro\n\nFinal thoughts\ngreat book\n\n"
	if diff := cmp.Diff(want, defaultTemplates.Notes(notes)); diff != "" {
		t.Fatalf("Notes mismatch (-want +got):\n%s", diff)
	}

	if got, want := defaultTemplates.Notes(nil), "No notes found =(\n"; got != want {
		t.Fatalf("Notes(nil)=%q, want=%q", got, want)
	}
}
