package library

import (
	"encoding/json"
	"fmt"
)

// NoteKind tells a page-range note from a book's final thoughts.
type NoteKind uint8

// Note kinds.
const (
	RangeNote NoteKind = iota
	FinalThoughts
)

// Note is a free-text annotation on a book.
//
// A [RangeNote] covers pages Start through End inclusive. A [FinalThoughts]
// note only has a Start (the cursor when the book was finished); End is zero.
type Note struct {
	Kind  NoteKind
	Start uint16
	End   uint16
	Text  string
}

// NewRangeNote returns a note covering pages start through end.
func NewRangeNote(start, end uint16, text string) Note {
	return Note{Kind: RangeNote, Start: start, End: end, Text: text}
}

// NewFinalThoughts returns a final-thoughts note starting at start.
func NewFinalThoughts(start uint16, text string) Note {
	return Note{Kind: FinalThoughts, Start: start, Text: text}
}

// IsFinalThoughts reports whether n is a final-thoughts note.
func (n Note) IsFinalThoughts() bool { return n.Kind == FinalThoughts }

// Contains reports whether page falls inside a range note.
// Final-thoughts notes contain no pages.
func (n Note) Contains(page uint16) bool {
	return n.Kind == RangeNote && n.Start <= page && page <= n.End
}

// noteRecord is the stored shape of a note.
type noteRecord struct {
	Start uint16 `json:"start" yaml:"start"`
	End   uint16 `json:"end"   yaml:"end"`
	Text  string `json:"note"  yaml:"note"`
}

func (n Note) record() noteRecord {
	end := n.End
	if n.Kind == FinalThoughts {
		end = FinalThoughtsEnd
	}

	return noteRecord{Start: n.Start, End: end, Text: n.Text}
}

func (r noteRecord) note() Note {
	if r.End == FinalThoughtsEnd {
		return NewFinalThoughts(r.Start, r.Text)
	}

	return NewRangeNote(r.Start, r.End, r.Text)
}

// MarshalJSON encodes n with the final-thoughts end sentinel.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.record())
}

// UnmarshalJSON decodes a stored note.
func (n *Note) UnmarshalJSON(data []byte) error {
	var rec noteRecord

	err := json.Unmarshal(data, &rec)
	if err != nil {
		return fmt.Errorf("note: %w", err)
	}

	*n = rec.note()

	return nil
}

// MarshalYAML encodes n the same way as MarshalJSON.
func (n Note) MarshalYAML() (any, error) {
	return n.record(), nil
}
