// Package scriptpath derives the companion script path from the launcher's
// own executable path and decides whether the launcher impersonates the
// reference interpreter.
package scriptpath

import (
	"errors"
	"fmt"
)

// Kind selects how the executable path is rewritten.
type Kind int

const (
	// FixedSuffix replaces the last path component with a fixed relative
	// path, e.g. `\exiftool_files\exiftool.pl`.
	FixedSuffix Kind = iota + 1
	// ExtensionSwap replaces the extension, e.g. ".pl".
	ExtensionSwap
	// ExtensionStrip drops the extension. Its rule text is exactly ".".
	ExtensionStrip
)

func (k Kind) String() string {
	switch k {
	case FixedSuffix:
		return "fixed-suffix"
	case ExtensionSwap:
		return "extension-swap"
	case ExtensionStrip:
		return "extension-strip"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrInvalidRule is returned by ParseRule for malformed rule strings.
var ErrInvalidRule = errors.New("invalid replacement rule")

// Rule is a parsed replacement rule.
type Rule struct {
	Kind Kind
	Text string
}

// ParseRule classifies s by its first byte. A rule must start with a path
// separator or with ".".
func ParseRule(s string) (Rule, error) {
	if s == "" {
		return Rule{}, fmt.Errorf("%w: empty", ErrInvalidRule)
	}
	switch s[0] {
	case '/', '\\':
		if len(s) == 1 {
			return Rule{}, fmt.Errorf("%w: %q names no file", ErrInvalidRule, s)
		}
		return Rule{Kind: FixedSuffix, Text: s}, nil
	case '.':
		if len(s) == 1 {
			return Rule{Kind: ExtensionStrip, Text: s}, nil
		}
		return Rule{Kind: ExtensionSwap, Text: s}, nil
	default:
		return Rule{}, fmt.Errorf("%w: %q must start with a path separator or '.'", ErrInvalidRule, s)
	}
}

// MustParseRule is like ParseRule but panics on error. Intended for
// compiled-in rules and tests.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Delim is the byte searched for (rightmost occurrence) in the executable path.
func (r Rule) Delim() byte {
	return r.Text[0]
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %q", r.Kind, r.Text)
}
