package entry

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/purego"

	"github.com/vertti/ppl/pkg/argv"
	"github.com/vertti/ppl/pkg/dynlib"
)

// callFunc performs the foreign call. Replaced in tests.
var callFunc = func(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

// DynamicBinder locates the runtime library relative to the executable,
// loads it and resolves Symbol.
type DynamicBinder struct {
	Pattern  string
	Symbol   string
	Capacity int // bound for the library search path
	Loader   dynlib.Loader
	Log      *log.Logger
}

// Bind returns an entry point that owns the loaded library. On error
// nothing stays loaded.
func (b *DynamicBinder) Bind(exe string) (EntryPoint, error) {
	logger := b.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m, err := dynlib.Locate(exe, b.Pattern, b.Capacity)
	if err != nil {
		return nil, err
	}
	logger.Debug("library search", "search", m.SearchPath)
	if m.Ambiguous() {
		logger.Warn("more than one library matches, using the first", "search", m.SearchPath, "candidates", m.Candidates, "using", m.Name)
	}
	logger.Debug("library found", "name", m.Name, "dir", m.Dir)

	lib, err := b.Loader.Open(m)
	if err != nil {
		return nil, err
	}

	sym, err := lib.Symbol(b.Symbol)
	if err != nil {
		_ = lib.Close()
		return nil, err
	}
	return &Dynamic{lib: lib, sym: sym}, nil
}

// Dynamic is an entry point resolved from a loaded library.
type Dynamic struct {
	lib dynlib.Library
	sym uintptr
}

// Call marshals argv and env into C layout and calls the entry point. The
// result is the callee's int; the upper half of the return register is
// discarded so negative codes survive.
func (d *Dynamic) Call(args, env []string) (int, error) {
	cargv, err := argv.NewCVector(args)
	if err != nil {
		return 0, err
	}
	cenv, err := argv.NewCVector(env)
	if err != nil {
		return 0, err
	}

	r := callFunc(d.sym, uintptr(cargv.Len()), uintptr(cargv.Pointer()), uintptr(cenv.Pointer()))
	cargv.KeepAlive()
	cenv.KeepAlive()

	return int(int32(uint32(r))), nil
}

// Close releases the library.
func (d *Dynamic) Close() error {
	return d.lib.Close()
}
