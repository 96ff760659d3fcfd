package scriptpath

import (
	"fmt"

	"github.com/vertti/ppl/pkg/pathbuf"
)

// DelimiterNotFoundError is returned when the rule's first byte does not
// occur in the executable path.
type DelimiterNotFoundError struct {
	Delim byte
	Path  string
}

func (e *DelimiterNotFoundError) Error() string {
	return fmt.Sprintf("failed to find '%c' in %s", e.Delim, e.Path)
}

// Derive rewrites exe according to rule. capacity bounds the result
// including its terminator; the check is made against the longest possible
// result before anything is written.
func Derive(exe string, rule Rule, capacity int) (string, error) {
	if len(exe)+len(rule.Text)+1 > capacity {
		return "", &pathbuf.PathTooLongError{Path: exe, Capacity: capacity}
	}

	buf, err := pathbuf.From(exe, capacity)
	if err != nil {
		return "", &pathbuf.PathTooLongError{Path: exe, Capacity: capacity}
	}

	at := buf.LastIndexByte(rule.Delim())
	if at < 0 {
		return "", &DelimiterNotFoundError{Delim: rule.Delim(), Path: exe}
	}

	switch rule.Kind {
	case ExtensionStrip:
		err = buf.Truncate(at)
	case ExtensionSwap, FixedSuffix:
		err = buf.OverwriteAt(at, rule.Text)
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRule, rule)
	}
	if err != nil {
		return "", fmt.Errorf("rewrite %s: %w", exe, err)
	}
	return buf.String(), nil
}

// Emulates reports whether the file name of exe equals reference exactly.
// An empty reference disables emulation.
func Emulates(exe, reference string) bool {
	if reference == "" {
		return false
	}
	_, name := pathbuf.Split(exe)
	return name == reference
}
