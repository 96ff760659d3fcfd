//go:build windows

package selfpath

import (
	"errors"

	"golang.org/x/sys/windows"
)

var errTruncated = errors.New("module file name truncated")

// executable asks for the module file name of the process image. The buffer
// is sized in UTF-16 units; a result that fills it completely was truncated.
func executable(capacity int) (string, error) {
	buf := make([]uint16, capacity)
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil {
		return "", err
	}
	if int(n) >= len(buf) {
		return "", errTruncated
	}
	return windows.UTF16ToString(buf[:n]), nil
}
