// Package zeroize overwrites secret buffers with zeros in a way the
// compiler cannot optimize away as a dead store.
package zeroize

import "runtime"

// Bytes overwrites b with zeros.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Words overwrites w with zeros.
func Words(w []uint64) {
	if len(w) == 0 {
		return
	}
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(w)
}
