package ittybitty

import (
	"fmt"
)

// Equal reports whether b and other hold the same set bits, regardless of
// whether either has spilled or how many words each has allocated.
func (b *BitSet[A]) Equal(other *BitSet[A]) bool {
	x, y := b.words(), other.words()
	if len(x) < len(y) {
		x, y = y, x
	}
	for i, w := range y {
		if x[i] != w {
			return false
		}
	}
	// Words past the shorter set count as zero.
	for _, w := range x[len(y):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// String renders the set bits in ascending order, e.g. "[3 17 127]".
func (b *BitSet[A]) String() string {
	return fmt.Sprint(b.AppendTo(nil))
}
