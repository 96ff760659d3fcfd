// Package argv builds the argument vector handed to the entry point.
package argv

import (
	"fmt"
	"math"
)

// Added is the number of arguments inserted in front of the user's.
const Added = 1

// OutOfMemoryError is returned when the argument vector cannot be
// allocated. The only way this happens without the runtime aborting is an
// argument count that does not fit a C int.
type OutOfMemoryError struct {
	Count int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("out of memory building new arg list (%d entries)", e.Count)
}

// Build returns the vector for the entry point. In emulation mode it is a
// copy of orig. Otherwise script is inserted after orig[0]; argv[0] is kept
// even though interpreters tend to ignore it.
func Build(orig []string, script string, emulate bool) ([]string, error) {
	if emulate {
		if len(orig) >= math.MaxInt32 {
			return nil, &OutOfMemoryError{Count: len(orig)}
		}
		out := make([]string, len(orig))
		copy(out, orig)
		return out, nil
	}

	n := len(orig) + Added
	if len(orig) == 0 {
		n++ // argv[0] is synthesized
	}
	if n >= math.MaxInt32 {
		return nil, &OutOfMemoryError{Count: n}
	}

	out := make([]string, 0, n)
	if len(orig) == 0 {
		out = append(out, "")
	} else {
		out = append(out, orig[0])
	}
	out = append(out, script)
	if len(orig) > 1 {
		out = append(out, orig[1:]...)
	}
	return out, nil
}
