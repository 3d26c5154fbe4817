package cli

import (
	"fmt"
	"log/slog"

	"github.com/bw-notes/bw/internal/config"
	"github.com/bw-notes/bw/internal/fs"
	"github.com/bw-notes/bw/internal/journal"
	"github.com/bw-notes/bw/internal/store"
)

// app is the per-invocation state shared by all commands. The library
// document is only touched by commands that need it.
type app struct {
	fs       fs.FS
	env      map[string]string
	settings config.Settings
	logger   *slog.Logger
	io       *IO

	journal *journal.Journal
}

// DataDir returns the directory holding the library document.
func (a *app) DataDir() (string, error) {
	if a.settings.DataDir != "" {
		return a.settings.DataDir, nil
	}

	return store.DefaultDataDir(a.env)
}

// Journal opens the library store on first use.
func (a *app) Journal() (*journal.Journal, error) {
	if a.journal != nil {
		return a.journal, nil
	}

	dir, err := a.DataDir()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(a.fs, store.DocumentPath(dir), a.logger)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}

	s.OnCreate(func(path string) {
		a.io.ErrPrintln("Created library at " + path + ". Add a book with new.")
	})

	a.journal = journal.New(s)

	return a.journal, nil
}
