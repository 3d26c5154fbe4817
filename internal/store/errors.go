package store

import "errors"

// Error variables for store operations.
var (
	// ErrStorageCorrupt means the library document exists but cannot be parsed.
	ErrStorageCorrupt = errors.New("library document is corrupt")
	// ErrStorageUnavailable means the document path cannot be created,
	// opened or written.
	ErrStorageUnavailable = errors.New("library storage unavailable")
	// ErrNoDataDir means no data directory could be derived from the environment.
	ErrNoDataDir = errors.New("cannot determine data directory (set BW_DATA_DIR, XDG_DATA_HOME or HOME)")
)
