// Package dynlib finds and loads the shared library that provides the entry
// point.
//
// Known limitation: more than one file matching the search pattern is a
// misconfiguration. Locate then uses the first match in directory
// enumeration order (by name) and reports all of them in Match.Candidates.
package dynlib

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vertti/ppl/pkg/pathbuf"
)

// LibraryNotFoundError is returned when no file matches the search path.
type LibraryNotFoundError struct {
	SearchPath string
	Err        error // set when the pattern itself could not be evaluated
}

func (e *LibraryNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not find %s: %v", e.SearchPath, e.Err)
	}
	return fmt.Sprintf("could not find %s", e.SearchPath)
}

func (e *LibraryNotFoundError) Unwrap() error { return e.Err }

// Match describes the library selected by Locate.
type Match struct {
	SearchPath string   // executable directory + pattern
	Dir        string   // directory holding the library, with trailing separator
	Name       string   // bare file name of the library
	Candidates []string // every match relative to the executable directory
}

// Path returns the full path of the selected library.
func (m Match) Path() string { return m.Dir + m.Name }

// Ambiguous reports whether more than one file matched.
func (m Match) Ambiguous() bool { return len(m.Candidates) > 1 }

// Locate searches the directory of exe for pattern.
func Locate(exe, pattern string, capacity int) (Match, error) {
	dir, _ := pathbuf.Split(exe)
	root := dir
	if root == "" {
		root = "."
	}
	return LocateFS(os.DirFS(root), exe, pattern, capacity)
}

// LocateFS is Locate with fsys standing in for the executable's directory.
func LocateFS(fsys fs.FS, exe, pattern string, capacity int) (Match, error) {
	dir, _ := pathbuf.Split(exe)
	searchPath := dir + pattern

	// dir + pattern + terminator must fit; exe itself is already bounded.
	if _, err := pathbuf.From(searchPath, capacity); err != nil {
		return Match{}, &pathbuf.PathTooLongError{Path: searchPath, Capacity: capacity}
	}

	matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return Match{}, &LibraryNotFoundError{SearchPath: searchPath, Err: err}
	}
	if len(matches) == 0 {
		return Match{}, &LibraryNotFoundError{SearchPath: searchPath}
	}

	// The pattern may carry its own subdirectory, so the library directory
	// comes from the match rather than from the executable.
	sub, name := path.Split(matches[0])
	return Match{
		SearchPath: searchPath,
		Dir:        dir + filepath.FromSlash(sub),
		Name:       name,
		Candidates: matches,
	}, nil
}
