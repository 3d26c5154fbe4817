package fs

import (
	"errors"
	iofs "io/fs"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
)

// ChaosConfig controls fault injection probabilities.
// Each rate is a float64 from 0.0 (never) to 1.0 (always).
type ChaosConfig struct {
	ReadFailRate  float64 // Fail ReadFile
	WriteFailRate float64 // Fail WriteFileAtomic
	MkdirFailRate float64 // Fail MkdirAll
	StatFailRate  float64 // Fail Exists
	LockFailRate  float64 // Fail Lock acquisition
}

// ChaosMode controls how Chaos behaves.
type ChaosMode uint8

const (
	// ChaosModePassthrough behaves like the underlying FS.
	ChaosModePassthrough ChaosMode = iota

	// ChaosModeInject enables fault-rate injection.
	ChaosModeInject
)

// Chaos wraps an [FS] and injects failures for testing.
//
// Injected errors are real OS errors (syscall.Errno wrapped in
// *fs.PathError) so os.IsNotExist, errors.Is and friends behave as they
// would against a real disk. [IsInjected] tells them apart from real ones.
//
// Rules added with [Chaos.FailPath] fail every operation of the given kind on
// one exact path, independent of the rates.
type Chaos struct {
	fs     FS
	rng    *rand.Rand
	config ChaosConfig
	mode   atomic.Uint32

	mu        sync.Mutex
	pathRules map[chaosRule]syscall.Errno

	faults atomic.Int64
}

type chaosRule struct {
	op   string
	path string
}

// NewChaos creates a new Chaos filesystem wrapping the given [FS].
// The seed controls random fault injection for reproducibility.
// A new Chaos starts in [ChaosModeInject].
func NewChaos(fsys FS, seed int64, config ChaosConfig) *Chaos {
	c := &Chaos{
		fs:        fsys,
		rng:       rand.New(rand.NewSource(seed)),
		config:    config,
		pathRules: make(map[chaosRule]syscall.Errno),
	}
	c.SetMode(ChaosModeInject)

	return c
}

// SetMode updates Chaos behavior. Safe for concurrent use.
func (c *Chaos) SetMode(m ChaosMode) { c.mode.Store(uint32(m)) }

// FailPath makes every op ("read", "write", "mkdir", "stat" or
// "lock") on path fail with errno while injecting.
func (c *Chaos) FailPath(op, path string, errno syscall.Errno) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pathRules[chaosRule{op: op, path: path}] = errno
}

// TotalFaults returns the number of injected faults so far.
func (c *Chaos) TotalFaults() int64 {
	return c.faults.Load()
}

func (c *Chaos) ReadFile(path string) ([]byte, error) {
	if err := c.maybeFail("read", path, c.config.ReadFailRate, syscall.EIO); err != nil {
		return nil, err
	}

	return c.fs.ReadFile(path)
}

func (c *Chaos) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := c.maybeFail("write", path, c.config.WriteFailRate, syscall.ENOSPC); err != nil {
		return err
	}

	return c.fs.WriteFileAtomic(path, data, perm)
}

func (c *Chaos) MkdirAll(path string, perm os.FileMode) error {
	if err := c.maybeFail("mkdir", path, c.config.MkdirFailRate, syscall.EACCES); err != nil {
		return err
	}

	return c.fs.MkdirAll(path, perm)
}

func (c *Chaos) Exists(path string) (bool, error) {
	if err := c.maybeFail("stat", path, c.config.StatFailRate, syscall.EACCES); err != nil {
		return false, err
	}

	return c.fs.Exists(path)
}

func (c *Chaos) Lock(path string) (Locker, error) {
	if err := c.maybeFail("lock", path, c.config.LockFailRate, syscall.EWOULDBLOCK); err != nil {
		return nil, err
	}

	return c.fs.Lock(path)
}

func (c *Chaos) maybeFail(op, path string, rate float64, errno syscall.Errno) error {
	if ChaosMode(c.mode.Load()) != ChaosModeInject {
		return nil
	}

	c.mu.Lock()
	ruleErrno, hasRule := c.pathRules[chaosRule{op: op, path: path}]
	hit := hasRule || c.rng.Float64() < rate
	c.mu.Unlock()

	if !hit {
		return nil
	}

	if hasRule {
		errno = ruleErrno
	}

	c.faults.Add(1)

	return pathError(op, path, errno)
}

// --- Injected error tracking ---

var injectedPathErrors sync.Map // map[*iofs.PathError]struct{}

// pathError creates an *fs.PathError matching what the OS would return and
// remembers it as injected.
func pathError(op, path string, errno syscall.Errno) error {
	pe := &iofs.PathError{Op: op, Path: path, Err: errno}
	injectedPathErrors.Store(pe, struct{}{})

	return pe
}

// IsInjected reports whether err (or any wrapped error) was injected by
// [Chaos]. Returns false if err is nil.
func IsInjected(err error) bool {
	if err == nil {
		return false
	}

	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		_, ok := injectedPathErrors.Load(pathErr)

		return ok
	}

	return false
}

// Compile-time interface check.
var _ FS = (*Chaos)(nil)
