package ittybitty

import "math/bits"

// Get reports whether bit is set. Indices outside the capacity, including
// negative ones, read as false.
func (b *BitSet[A]) Get(bit int) bool {
	if bit < 0 || bit >= b.Capacity() {
		return false
	}
	return b.GetUnchecked(bit)
}

// Set sets bit to value. Setting a bit beyond the capacity to true grows the
// set; clearing one is a no-op. Set panics if bit is negative and value is
// true.
func (b *BitSet[A]) Set(bit int, value bool) {
	if bit < 0 || bit >= b.Capacity() {
		if !value {
			return
		}
		if bit < 0 || bit >= maxBits {
			panic("ittybitty: bit index out of range")
		}
		b.reallocate(bit + 1)
	}
	b.SetUnchecked(bit, value)
}

// GetUnchecked is Get without the capacity check.
// The caller must guarantee 0 <= bit < Capacity().
func (b *BitSet[A]) GetUnchecked(bit int) bool {
	return b.words()[bit>>wordPot]&(1<<(uint(bit)&wordMask)) != 0
}

// SetUnchecked is Set without the capacity check or growth.
// The caller must guarantee 0 <= bit < Capacity(); writing past it may
// corrupt the heap flag.
func (b *BitSet[A]) SetUnchecked(bit int, value bool) {
	w := &b.words()[bit>>wordPot]
	mask := uint(1) << (uint(bit) & wordMask)
	if value {
		*w |= mask
	} else {
		*w &^= mask
	}
}

// Clear unsets every bit. Capacity and any heap storage are kept.
func (b *BitSet[A]) Clear() {
	clear(b.words())
}

// Truncate unsets bit and every bit above it. Lower bits are untouched and
// the capacity is kept.
func (b *BitSet[A]) Truncate(bit int) {
	bit = max(bit, 0)
	if bit >= b.Capacity() {
		return
	}
	words := b.words()
	w := bit >> wordPot
	words[w] &^= ^uint(0) << (uint(bit) & wordMask)
	clear(words[w+1:])
}

// Count returns the number of set bits.
func (b *BitSet[A]) Count() int {
	n := 0
	for _, w := range b.words() {
		n += bits.OnesCount(w)
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b *BitSet[A]) IsEmpty() bool {
	for _, w := range b.words() {
		if w != 0 {
			return false
		}
	}
	return true
}
