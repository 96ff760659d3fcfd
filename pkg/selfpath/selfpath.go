// Package selfpath resolves the absolute path of the running executable.
package selfpath

import (
	"fmt"
)

// Resolver abstracts the platform query for testability.
type Resolver interface {
	Executable() (string, error)
}

// PathResolutionError is returned when the executable path cannot be
// obtained or does not fit the path buffer.
type PathResolutionError struct {
	Capacity int
	Err      error
}

func (e *PathResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve executable path: %v", e.Err)
	}
	return fmt.Sprintf("executable path does not fit a %d byte buffer", e.Capacity)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

// RealResolver queries the operating system. Capacity bounds the result,
// terminator included.
type RealResolver struct {
	Capacity int
}

// Executable returns the absolute path of the running binary.
func (r *RealResolver) Executable() (string, error) {
	p, err := executable(r.Capacity)
	if err != nil {
		return "", &PathResolutionError{Capacity: r.Capacity, Err: err}
	}
	if len(p)+1 > r.Capacity {
		return "", &PathResolutionError{Capacity: r.Capacity}
	}
	return p, nil
}

// Fixed resolves to a given path. Used to inspect a layout from outside
// the executable.
type Fixed string

// Executable returns the fixed path.
func (f Fixed) Executable() (string, error) {
	return string(f), nil
}
