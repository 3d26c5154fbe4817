package store

import (
	"path/filepath"
	"strings"
)

const (
	appName      = "bw"
	documentName = "library.json"
	backupExt    = ".bak"
)

// DefaultDataDir returns the per-user data directory for bw.
// Uses $BW_DATA_DIR if set, then $XDG_DATA_HOME/bw, then ~/.local/share/bw.
func DefaultDataDir(env map[string]string) (string, error) {
	if dir := env["BW_DATA_DIR"]; dir != "" {
		return dir, nil
	}

	if xdgData := env["XDG_DATA_HOME"]; xdgData != "" {
		return filepath.Join(xdgData, appName), nil
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".local", "share", appName), nil
	}

	return "", ErrNoDataDir
}

// DocumentPath returns the library document path inside dataDir.
func DocumentPath(dataDir string) string {
	return filepath.Join(dataDir, documentName)
}

// BackupPath returns the sibling backup path for a document:
// library.json becomes library.bak.
func BackupPath(documentPath string) string {
	return strings.TrimSuffix(documentPath, filepath.Ext(documentPath)) + backupExt
}
