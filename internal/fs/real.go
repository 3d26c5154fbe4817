package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"golang.org/x/sys/unix"
)

// Real implements [FS] using the real filesystem.
//
// Methods are passthroughs to the [os] package except [Real.Exists] which
// wraps [os.Stat], [Real.WriteFileAtomic] which uses atomic file writes,
// and [Real.Lock] which provides flock based locking.
type Real struct {
	lockTimeout time.Duration
}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{lockTimeout: defaultLockTimeout}
}

// A passthrough wrapper for [os.ReadFile].
func (*Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes data to a temp file next to path, syncs it and
// renames it over path. The file mode is set to perm after the rename.
func (*Real) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	err := atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return err
	}

	return os.Chmod(path, perm)
}

// A passthrough wrapper for [os.MkdirAll].
func (*Real) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Exists checks if a file exists using [os.Stat].
func (*Real) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// --- Locking ---

const (
	defaultLockTimeout = 2 * time.Second
	lockPollInterval   = 10 * time.Millisecond
	locksDirName       = ".locks"
	lockPerms          = 0o644
	dirPerms           = 0o755
)

// realLock holds an exclusive file lock.
type realLock struct {
	path string
	file *os.File
}

// Close removes the lock file while still holding the lock, then unlocks.
func (l *realLock) Close() error {
	if l.file == nil {
		return nil
	}

	_ = os.Remove(l.path)
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	err := l.file.Close()
	l.file = nil

	return err
}

// Lock takes an exclusive flock on path's lock file in a ".locks" sibling
// directory. It retries non-blocking attempts until the timeout expires and
// verifies the locked inode is still the one at the lock path.
func (r *Real) Lock(path string) (Locker, error) {
	locksDir := filepath.Join(filepath.Dir(path), locksDirName)
	lockPath := filepath.Join(locksDir, filepath.Base(path)+".lock")

	deadline := time.Now().Add(r.lockTimeout)

	for {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}

		if err := os.MkdirAll(locksDir, dirPerms); err != nil {
			return nil, fmt.Errorf("creating locks dir: %w", err)
		}

		file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, lockPerms)
		if err != nil {
			return nil, fmt.Errorf("open lock file: %w", err)
		}

		var openStat unix.Stat_t
		if err := unix.Fstat(int(file.Fd()), &openStat); err != nil {
			_ = file.Close()

			return nil, fmt.Errorf("fstat lock file: %w", err)
		}

		err = unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err != nil {
			_ = file.Close()

			if err == unix.EWOULDBLOCK {
				time.Sleep(lockPollInterval)

				continue
			}

			return nil, fmt.Errorf("flock: %w", err)
		}

		// Someone may have removed and recreated the lock file between our
		// open and flock.
		var pathStat unix.Stat_t
		if err := unix.Stat(lockPath, &pathStat); err != nil || pathStat.Ino != openStat.Ino {
			_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
			_ = file.Close()

			continue
		}

		return &realLock{path: lockPath, file: file}, nil
	}
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
