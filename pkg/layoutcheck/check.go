// Package layoutcheck verifies that a staged launcher layout is what the
// launcher expects: a derivable script path, the script itself and exactly
// one runtime library exporting the entry point.
package layoutcheck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vertti/ppl/pkg/check"
	"github.com/vertti/ppl/pkg/config"
	"github.com/vertti/ppl/pkg/dynlib"
	"github.com/vertti/ppl/pkg/launcher"
)

// ExecutableCheck resolves the executable and derives the script path the
// way the launcher does. Plan is filled in on success for the checks that
// follow.
type ExecutableCheck struct {
	Launcher *launcher.Launcher
	Plan     launcher.Plan
}

// Run executes the executable check.
func (c *ExecutableCheck) Run() check.Result {
	result := check.Result{Name: "executable", Status: check.StatusOK}

	p, err := c.Launcher.Prepare()
	if err != nil {
		return result.FailErr(err)
	}
	c.Plan = p

	rule, _ := c.Launcher.Config.Rule()
	result.Name = "executable: " + p.Executable
	result.AddDetailf("rule: %s", rule)
	if p.Emulate {
		result.AddDetailf("emulate: %s, arguments are passed unchanged", c.Launcher.Config.ReferenceTool)
	} else {
		result.AddDetail("emulate: false")
	}
	return result
}

// ScriptCheck verifies that the derived script exists and is a file.
type ScriptCheck struct {
	Plan launcher.Plan
	FS   FileSystem
}

// Run executes the script check.
func (c *ScriptCheck) Run() check.Result {
	result := check.Result{Name: "script: " + c.Plan.Script, Status: check.StatusOK}

	if c.Plan.Emulate {
		result.AddDetail("not used in emulation mode")
		return result
	}

	info, err := c.FS.Stat(c.Plan.Script)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail("not found", err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Fail(fmt.Sprintf("stat failed: %v", err), err)
		}
	}
	if info.IsDir() {
		return result.Fail("is a directory", errors.New("script is a directory"))
	}
	result.AddDetailf("size: %d", info.Size())
	return result
}

// LibraryCheck locates the runtime library. With Load set it also loads
// the library and resolves the entry point, then releases it again.
type LibraryCheck struct {
	Executable string
	Config     config.Config
	Static     bool // entry point linked at build time
	Load       bool
	Loader     dynlib.Loader
}

// Run executes the library check.
func (c *LibraryCheck) Run() check.Result {
	result := check.Result{Name: "library", Status: check.StatusOK}

	if c.Static {
		result.AddDetailf("%s linked at build time, no library to find", c.Config.Symbol)
		return result
	}

	m, err := dynlib.Locate(c.Executable, c.Config.LibraryPattern, c.Config.LibraryCapacity)
	if err != nil {
		return result.FailErr(err)
	}

	result.Name = "library: " + m.Path()
	result.AddDetailf("search: %s", m.SearchPath)
	if m.Ambiguous() {
		result.Warn(fmt.Sprintf("ambiguous: %d files match (%s), the first is used",
			len(m.Candidates), strings.Join(m.Candidates, ", ")))
	}

	if !c.Load {
		return result
	}

	lib, err := c.Loader.Open(m)
	if err != nil {
		return result.FailErr(err)
	}
	defer func() { _ = lib.Close() }()

	if _, err := lib.Symbol(c.Config.Symbol); err != nil {
		return result.FailErr(err)
	}
	result.AddDetailf("symbol: %s resolved", c.Config.Symbol)
	return result
}
