package library

import "errors"

// Error variables for library operations.
var (
	ErrBookIndexOutOfRange = errors.New("book index out of range")
	ErrNoNoteForPage       = errors.New("no note for this page")
	ErrInvalidStep         = errors.New("step must be greater than zero")
	ErrInvalidPageRange    = errors.New("invalid page range")
	ErrBookFinished        = errors.New("book is already finished")
	ErrInvalidNoteIndex    = errors.New("note index must not be negative")
)
