package argv

import (
	"errors"
	"runtime"
	"strings"
	"unsafe"
)

// ErrNUL is returned for strings that cannot be represented in C.
var ErrNUL = errors.New("string contains NUL byte")

// CVector is a NULL-terminated array of NUL-terminated strings laid out
// for a C callee (char **). It lives in Go memory; the Go heap does not
// move objects, so the pointers stay valid while the vector is reachable.
type CVector struct {
	bufs [][]byte
	ptrs []*byte
}

// NewCVector copies strs into C layout.
func NewCVector(strs []string) (*CVector, error) {
	v := &CVector{
		bufs: make([][]byte, len(strs)),
		ptrs: make([]*byte, len(strs)+1),
	}
	for i, s := range strs {
		if strings.IndexByte(s, 0) >= 0 {
			return nil, ErrNUL
		}
		b := make([]byte, len(s)+1)
		copy(b, s)
		v.bufs[i] = b
		v.ptrs[i] = &b[0]
	}
	return v, nil
}

// Len returns the number of strings, excluding the terminator.
func (v *CVector) Len() int { return len(v.bufs) }

// Pointer returns the address of the first element, suitable as char **.
func (v *CVector) Pointer() unsafe.Pointer {
	return unsafe.Pointer(&v.ptrs[0])
}

// KeepAlive must be called after the foreign call that received Pointer.
func (v *CVector) KeepAlive() {
	runtime.KeepAlive(v.bufs)
	runtime.KeepAlive(v.ptrs)
}

// Strings reads the vector back the way a C callee would, stopping at the
// NULL terminator.
func (v *CVector) Strings() []string {
	var out []string
	for _, p := range v.ptrs {
		if p == nil {
			break
		}
		n := 0
		for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
			n++
		}
		out = append(out, unsafe.String(p, n))
	}
	return out
}
