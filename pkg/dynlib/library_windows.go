//go:build windows

package dynlib

import (
	"golang.org/x/sys/windows"
)

// Open adds the library directory to the DLL search path and loads the
// library by name, so dependent DLLs next to it resolve too. Setting the
// directory also drops the current directory from the search order. A
// failure to set it surfaces as a load failure below.
func (RealLoader) Open(m Match) (Library, error) {
	_ = windows.SetDllDirectory(m.Dir)
	h, err := windows.LoadLibrary(m.Name)
	if err != nil {
		return nil, newLoadError(m.Name, err)
	}
	return &handle{name: m.Name, h: uintptr(h)}, nil
}

func lookup(h uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func release(h uintptr) error {
	return windows.FreeLibrary(windows.Handle(h))
}
