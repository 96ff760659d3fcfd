//go:build !windows

package selfpath

import (
	"os"
	"path/filepath"
)

// executable uses os.Executable; the capacity check is left to the caller
// since the kernel reports the full path regardless of any buffer.
func executable(_ int) (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Abs(p)
}
