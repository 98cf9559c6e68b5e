// Package mem provides the word-buffer allocation used by spilled bit sets.
package mem

import (
	"slices"
	"unsafe"
)

// WordBytes is the size of a machine word in bytes.
const WordBytes = int(unsafe.Sizeof(uint(0)))

// AllocWords allocates a zeroed buffer of exactly n words (len == cap == n).
func AllocWords(n int) []uint {
	if n <= 0 {
		return nil
	}
	return make([]uint, n)
}

// CloneWords copies src into a fresh buffer holding at least n words.
// The returned slice is extended to its full capacity; words past len(src)
// are zero.
func CloneWords(src []uint, n int) []uint {
	buf := slices.Grow([]uint(nil), max(n, len(src)))
	buf = buf[:cap(buf)]
	copy(buf, src)
	return buf
}

// GrowWords extends buf to hold at least n words and returns it at full
// capacity with every word past the old length zeroed. The old slice header
// must not be used afterwards: its backing array is either reused or dropped.
func GrowWords(buf []uint, n int) []uint {
	old := len(buf)
	if n > cap(buf) {
		buf = slices.Grow(buf, n-old)
	}
	buf = buf[:cap(buf)]
	clear(buf[old:])
	return buf
}

// Words returns a slice aliasing the memory of the fixed-size word array *p.
// A must be an array of uint; the slice is valid for as long as *p is.
func Words[A any](p *A) []uint {
	n := unsafe.Sizeof(*p) / unsafe.Sizeof(uint(0))
	return unsafe.Slice((*uint)(unsafe.Pointer(p)), n) //nolint:gosec // unsafe is required to view an inline array as a slice
}
