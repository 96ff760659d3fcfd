//go:build perlstatic && cgo

package entry

/*
#include <stdlib.h>

// Provided by the perl import library at link time, e.g.
// CGO_LDFLAGS="-L${PERL}/lib/CORE -lperl532".
extern int RunPerl(int argc, char **argv, char **env);
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/vertti/ppl/pkg/argv"
)

// StaticBinder binds the entry point linked into the executable.
type StaticBinder struct{}

// Bind never fails.
func (StaticBinder) Bind(string) (EntryPoint, error) {
	return staticEntry{}, nil
}

type staticEntry struct{}

func (staticEntry) Call(args, env []string) (int, error) {
	cargv, err := cStrings(args)
	if err != nil {
		return 0, err
	}
	defer freeCStrings(cargv, len(args))

	cenv, err := cStrings(env)
	if err != nil {
		return 0, err
	}
	defer freeCStrings(cenv, len(env))

	return int(C.RunPerl(C.int(len(args)), cargv, cenv)), nil
}

func (staticEntry) Close() error { return nil }

// cStrings allocates a NULL-terminated char * array in C memory.
func cStrings(strs []string) (**C.char, error) {
	for _, s := range strs {
		if strings.IndexByte(s, 0) >= 0 {
			return nil, argv.ErrNUL
		}
	}
	p := C.malloc(C.size_t(len(strs)+1) * C.size_t(unsafe.Sizeof(uintptr(0))))
	if p == nil {
		return nil, &argv.OutOfMemoryError{Count: len(strs) + 1}
	}
	arr := unsafe.Slice((**C.char)(p), len(strs)+1)
	for i, s := range strs {
		arr[i] = C.CString(s)
	}
	arr[len(strs)] = nil
	return (**C.char)(p), nil
}

func freeCStrings(p **C.char, n int) {
	arr := unsafe.Slice(p, n+1)
	for i := 0; i < n; i++ {
		C.free(unsafe.Pointer(arr[i]))
	}
	C.free(unsafe.Pointer(p))
}
