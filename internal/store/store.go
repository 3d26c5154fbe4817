// Package store persists the reading journal as one JSON document.
//
// Every operation reads the whole document and every write replaces the
// whole document. Before each write the current document is copied to a
// sibling ".bak" file so the previous state can be restored by hand.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bw-notes/bw/internal/fs"
	"github.com/bw-notes/bw/internal/library"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// emptyDocument is written when no document exists yet.
var emptyDocument = []byte("[]")

// Store loads and saves the library document at one path.
//
// A Store holds no library state between calls.
type Store struct {
	fs     fs.FS
	path   string
	backup string
	log    *slog.Logger

	onCreate func(path string)
}

// Open returns a Store for the document at path. The parent directory is
// created if missing. Backup failures are reported to logger; a nil logger
// discards them.
func Open(fsys fs.FS, path string, logger *slog.Logger) (*Store, error) {
	if fsys == nil {
		return nil, errors.New("open store: fs is nil")
	}

	if path == "" {
		return nil, errors.New("open store: path is empty")
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path = filepath.Clean(path)

	err := fsys.MkdirAll(filepath.Dir(path), dirPerms)
	if err != nil {
		return nil, fmt.Errorf("open store: %w: %w", ErrStorageUnavailable, err)
	}

	return &Store{
		fs:     fsys,
		path:   path,
		backup: BackupPath(path),
		log:    logger,
	}, nil
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

// OnCreate registers fn to be called with the document path whenever Load
// writes a new empty document.
func (s *Store) OnCreate(fn func(path string)) { s.onCreate = fn }

// Load reads and parses the document. If no document exists an empty one is
// written and an empty library returned.
func (s *Store) Load() (*library.Library, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrStorageUnavailable, s.path, err)
	}

	if !exists {
		writeErr := s.fs.WriteFileAtomic(s.path, emptyDocument, filePerms)
		if writeErr != nil {
			return nil, fmt.Errorf("%w: create %s: %w", ErrStorageUnavailable, s.path, writeErr)
		}

		if s.onCreate != nil {
			s.onCreate(s.path)
		}

		return library.New(), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, s.path, err)
	}

	return decode(s.path, data)
}

// Save backs up the current document, then atomically replaces it with lib.
// A failed backup is logged and does not fail the save.
func (s *Store) Save(lib *library.Library) error {
	data, err := Encode(lib)
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}

	s.backupDocument()

	err = s.fs.WriteFileAtomic(s.path, data, filePerms)
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, s.path, err)
	}

	return nil
}

// Update runs handler against a freshly loaded library while holding an
// exclusive lock on the document, then saves the result. If handler returns
// an error nothing is saved and the error is returned unchanged.
func (s *Store) Update(handler func(lib *library.Library) error) error {
	lock, err := s.fs.Lock(s.path)
	if err != nil {
		return fmt.Errorf("%w: acquiring lock: %w", ErrStorageUnavailable, err)
	}

	defer func() { _ = lock.Close() }()

	lib, err := s.Load()
	if err != nil {
		return err
	}

	err = handler(lib)
	if err != nil {
		return err
	}

	return s.Save(lib)
}

// View runs handler against a freshly loaded library. Nothing is saved.
func (s *Store) View(handler func(lib *library.Library) error) error {
	lib, err := s.Load()
	if err != nil {
		return err
	}

	return handler(lib)
}

// backupDocument copies the current document to the backup path. It is
// best effort: any failure is logged and otherwise ignored.
func (s *Store) backupDocument() {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		s.log.Warn("library backup skipped", "path", s.path, "err", err)

		return
	}

	err = s.fs.WriteFileAtomic(s.backup, data, filePerms)
	if err != nil {
		s.log.Warn("library backup failed", "path", s.backup, "err", err)
	}
}

// Encode renders lib as the pretty-printed document.
func Encode(lib *library.Library) ([]byte, error) {
	if lib == nil {
		lib = library.New()
	}

	return json.MarshalIndent(lib, "", "  ")
}

func decode(path string, data []byte) (*library.Library, error) {
	lib := library.New()

	err := json.Unmarshal(data, lib)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStorageCorrupt, path, err)
	}

	return lib, nil
}
