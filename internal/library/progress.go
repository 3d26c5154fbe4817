package library

import "strconv"

// Encoded page values with special meaning in the library document.
const (
	// PageNotStarted is the encoded cursor of a book nobody has noted yet.
	PageNotStarted uint16 = 0
	// FinalThoughtsEnd is the encoded end page of a final-thoughts note.
	FinalThoughtsEnd uint16 = 65534
	// PageFinished is the encoded cursor of a finished book.
	PageFinished uint16 = 65535
)

// ProgressState is the reading state of a book.
type ProgressState uint8

// Progress states.
const (
	NotStarted ProgressState = iota
	InProgress
	Finished
)

func (s ProgressState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// Progress is a book's page cursor: the next page to read from.
//
// Only [InProgress] carries a page. The zero value is [NotStarted].
type Progress struct {
	state ProgressState
	page  uint16
}

// ProgressAt decodes a stored cursor value.
func ProgressAt(page uint16) Progress {
	switch page {
	case PageNotStarted:
		return Progress{state: NotStarted}
	case PageFinished:
		return Progress{state: Finished}
	default:
		return Progress{state: InProgress, page: page}
	}
}

// FinishedProgress returns the progress of a finished book.
func FinishedProgress() Progress {
	return Progress{state: Finished}
}

// State returns the reading state.
func (p Progress) State() ProgressState { return p.state }

// Page returns the next page to read. It is only meaningful for [InProgress].
func (p Progress) Page() uint16 { return p.page }

// Cursor returns the stored encoding of p.
func (p Progress) Cursor() uint16 {
	switch p.state {
	case NotStarted:
		return PageNotStarted
	case Finished:
		return PageFinished
	default:
		return p.page
	}
}

// Equal reports whether p and other encode the same cursor.
func (p Progress) Equal(other Progress) bool {
	return p.Cursor() == other.Cursor()
}
