//go:build !windows

package dynlib

import (
	"github.com/ebitengine/purego"
)

// Open loads the library by absolute path. The dynamic loader's search
// path is fixed at process start on unix, so there is no equivalent of
// adding the library directory to it; loading by full path skips the
// search altogether.
func (RealLoader) Open(m Match) (Library, error) {
	h, err := purego.Dlopen(m.Path(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, newLoadError(m.Name, err)
	}
	return &handle{name: m.Name, h: h}, nil
}

func lookup(h uintptr, name string) (uintptr, error) {
	return purego.Dlsym(h, name)
}

func release(h uintptr) error {
	return purego.Dlclose(h)
}
