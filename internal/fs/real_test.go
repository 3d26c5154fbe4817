package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// =============================================================================
// Real FS Tests
//
// Only our helpers are tested here: Exists, Lock and WriteFileAtomic.
// Plain passthroughs to the os package are not.
// =============================================================================

func TestReal_Exists_ReturnsFalseForNonExistent(t *testing.T) {
	t.Parallel()

	fsys := NewReal()

	exists, err := fsys.Exists(filepath.Join(t.TempDir(), "library.json"))
	if err != nil {
		t.Fatalf("err=%v, want=nil", err)
	}

	if got, want := exists, false; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

func TestReal_Exists_ReturnsTrueForFileAndDirectory(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	dir := t.TempDir()
	path := filepath.Join(dir, "library.json")

	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	for _, p := range []string{path, dir} {
		exists, err := fsys.Exists(p)
		if err != nil {
			t.Fatalf("Exists(%q) err=%v", p, err)
		}

		if !exists {
			t.Fatalf("Exists(%q)=false, want=true", p)
		}
	}
}

// -----------------------------------------------------------------------------
// Lock() Tests
// -----------------------------------------------------------------------------

func TestReal_Lock_CreatesLockFileAndRemovesItOnClose(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	dir := t.TempDir()
	lockPath := filepath.Join(dir, ".locks", "library.json.lock")

	lock, err := fsys.Lock(filepath.Join(dir, "library.json"))
	if err != nil {
		t.Fatalf("Lock err=%v, want=nil", err)
	}

	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("lock file should exist while held: %v", err)
	}

	if err := lock.Close(); err != nil {
		t.Fatalf("Close err=%v, want=nil", err)
	}

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Fatalf("lock file should be removed after Close, stat err=%v", err)
	}

	// Close is idempotent.
	if err := lock.Close(); err != nil {
		t.Fatalf("second Close err=%v, want=nil", err)
	}
}

func TestReal_Lock_SecondLockWaitsForRelease(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	path := filepath.Join(t.TempDir(), "library.json")

	lock1, err := fsys.Lock(path)
	if err != nil {
		t.Fatalf("first Lock err=%v", err)
	}

	var (
		lock2     Locker
		lock2Err  error
		lock2Time time.Time
	)

	done := make(chan struct{})

	go func() {
		lock2, lock2Err = fsys.Lock(path)
		lock2Time = time.Now()

		close(done)
	}()

	time.Sleep(100 * time.Millisecond)

	releaseTime := time.Now()
	_ = lock1.Close()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("second Lock should acquire after first is released")
	}

	if lock2Err != nil {
		t.Fatalf("second Lock err=%v", lock2Err)
	}

	if !lock2Time.After(releaseTime) {
		t.Fatal("second lock acquired before first was released")
	}

	_ = lock2.Close()
}

func TestReal_Lock_TimesOutWhenContended(t *testing.T) {
	t.Parallel()

	fsys := &Real{lockTimeout: 50 * time.Millisecond}
	path := filepath.Join(t.TempDir(), "library.json")

	lock1, err := fsys.Lock(path)
	if err != nil {
		t.Fatalf("first Lock err=%v", err)
	}
	defer lock1.Close()

	_, err = fsys.Lock(path)
	if !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("err=%v, want=%v", err, ErrLockTimeout)
	}
}

// -----------------------------------------------------------------------------
// WriteFileAtomic() Tests
// -----------------------------------------------------------------------------

func TestReal_WriteFileAtomic_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	dir := t.TempDir()
	path := filepath.Join(dir, "library.json")

	if err := fsys.WriteFileAtomic(path, []byte("[]"), 0o600); err != nil {
		t.Fatalf("first write: %v", err)
	}

	if err := fsys.WriteFileAtomic(path, []byte(`[{"name":"Dune"}]`), 0o600); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got, want := string(data), `[{"name":"Dune"}]`; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
		t.Fatalf("perm=%v, want=%v", got, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}

	if got, want := len(entries), 1; got != want {
		t.Fatalf("entries=%d, want=%d (temp file left behind?)", got, want)
	}
}
