// Package config holds the launcher's build-time configuration.
//
// There is no runtime configuration surface. The string variables below are
// compiled in and may be overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/vertti/ppl/pkg/config.replace=.pl" ./cmd/ppl
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vertti/ppl/pkg/scriptpath"
)

const (
	// MaxPath bounds the executable and script paths, terminator included.
	MaxPath = 1000
	// NameCapacity is the extra room reserved for the library search pattern.
	NameCapacity = 50
	// LibraryCapacity bounds the library search path, terminator included.
	LibraryCapacity = MaxPath + NameCapacity

	// DefaultSymbol is exported by both ActiveState and Strawberry perl DLLs.
	DefaultSymbol = "RunPerl"
)

// The compiled-in defaults must fit their buffers.
var (
	_ [LibraryCapacity - MaxPath - len(defaultLibraryPattern) - 1]struct{}
	_ [MaxPath - len(defaultReplace) - 1]struct{}
)

// Overridable with -ldflags -X.
var (
	replace        = defaultReplace
	libraryPattern = defaultLibraryPattern
	referenceTool  = defaultReferenceTool
	symbol         = DefaultSymbol
	debug          = "false"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid launcher configuration")

// Config is the launcher configuration. It is built once at startup and
// never modified afterwards.
type Config struct {
	Replace         string // replacement rule, see scriptpath.ParseRule
	LibraryPattern  string // library glob, relative to the executable's directory
	ReferenceTool   string // file name that selects emulation mode; empty disables it
	Symbol          string // exported entry point
	MaxPath         int
	LibraryCapacity int
	Debug           bool
}

// Default returns the compiled-in configuration.
func Default() Config {
	d, _ := strconv.ParseBool(debug)
	return Config{
		Replace:         replace,
		LibraryPattern:  libraryPattern,
		ReferenceTool:   referenceTool,
		Symbol:          symbol,
		MaxPath:         MaxPath,
		LibraryCapacity: LibraryCapacity,
		Debug:           d,
	}
}

// Rule parses the replacement rule.
func (c Config) Rule() (scriptpath.Rule, error) {
	return scriptpath.ParseRule(c.Replace)
}

// Validate checks the values a link-time override could have broken.
func (c Config) Validate() error {
	if _, err := c.Rule(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Symbol == "" {
		return fmt.Errorf("%w: empty entry point symbol", ErrInvalid)
	}
	if c.LibraryPattern == "" {
		return fmt.Errorf("%w: empty library search pattern", ErrInvalid)
	}
	if c.MaxPath <= len(c.Replace)+1 {
		return fmt.Errorf("%w: replacement rule %q leaves no room in a %d byte path", ErrInvalid, c.Replace, c.MaxPath)
	}
	if room := c.LibraryCapacity - c.MaxPath; len(c.LibraryPattern)+1 > room {
		return fmt.Errorf("%w: library pattern %q needs %d bytes, only %d reserved",
			ErrInvalid, c.LibraryPattern, len(c.LibraryPattern)+1, room)
	}
	return nil
}
