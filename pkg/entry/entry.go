// Package entry binds and invokes the runtime's exported entry point,
// int RunPerl(int argc, char **argv, char **env).
//
// Which binder exists is decided at build time: the default build discovers
// the runtime library next to the executable and loads it; building with
// -tags perlstatic (requires cgo) links the entry point directly and has no
// discovery stage.
package entry

// EntryPoint is a bound entry point.
type EntryPoint interface {
	// Call hands control to the runtime and returns its exit code. The
	// error is only set when the arguments could not be marshaled.
	Call(argv, env []string) (int, error)
	// Close releases whatever Bind acquired. Safe to call more than once.
	Close() error
}

// Binder produces the entry point for the executable at exe.
type Binder interface {
	Bind(exe string) (EntryPoint, error)
}
