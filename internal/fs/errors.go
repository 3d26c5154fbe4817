package fs

import "errors"

// ErrLockTimeout is returned by [FS.Lock] when the lock could not be
// acquired before the timeout expired.
var ErrLockTimeout = errors.New("lock timeout")
