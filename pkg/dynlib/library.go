package dynlib

import (
	"errors"
	"fmt"
	"syscall"
)

// LibraryLoadError is returned when the operating system refuses to load
// the library. Code carries the platform error number when there is one.
type LibraryLoadError struct {
	Name string
	Code uintptr
	Err  error
}

func (e *LibraryLoadError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("failed to load library %q code %d: %v", e.Name, e.Code, e.Err)
	}
	return fmt.Sprintf("failed to load library %q: %v", e.Name, e.Err)
}

func (e *LibraryLoadError) Unwrap() error { return e.Err }

func newLoadError(name string, err error) *LibraryLoadError {
	le := &LibraryLoadError{Name: name, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		le.Code = uintptr(errno)
	}
	return le
}

// SymbolNotFoundError is returned when the library does not export the
// requested symbol.
type SymbolNotFoundError struct {
	Symbol  string
	Library string
	Err     error
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("failed to get %s address in %s, check the library for name mangling", e.Symbol, e.Library)
}

func (e *SymbolNotFoundError) Unwrap() error { return e.Err }

// ErrClosed is returned by Symbol after Close.
var ErrClosed = errors.New("library already closed")

// Library is a loaded shared library.
type Library interface {
	Name() string
	// Symbol returns the address of an exported function.
	Symbol(name string) (uintptr, error)
	// Close releases the library. Calls after the first are no-ops.
	Close() error
}

// Loader opens the library selected by Locate.
type Loader interface {
	Open(m Match) (Library, error)
}

// RealLoader loads libraries through the operating system.
type RealLoader struct{}

// handle is the platform-neutral part of a loaded library.
type handle struct {
	name   string
	h      uintptr
	closed bool
}

func (l *handle) Name() string { return l.name }

func (l *handle) Symbol(name string) (uintptr, error) {
	if l.closed {
		return 0, &SymbolNotFoundError{Symbol: name, Library: l.name, Err: ErrClosed}
	}
	addr, err := lookup(l.h, name)
	if err != nil || addr == 0 {
		return 0, &SymbolNotFoundError{Symbol: name, Library: l.name, Err: err}
	}
	return addr, nil
}

func (l *handle) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return release(l.h)
}
