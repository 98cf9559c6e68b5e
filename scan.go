package ittybitty

import "math/bits"

// NextSetBit returns the lowest set index that is >= bit, or None.
// Negative arguments scan from 0.
func (b *BitSet[A]) NextSetBit(bit int) int {
	bit = max(bit, 0)
	if bit >= b.Capacity() {
		return None
	}
	words := b.words()
	w := bit >> wordPot

	// Mask out bits before the offset in the first word.
	if v := words[w] & (^uint(0) << (uint(bit) & wordMask)); v != 0 {
		return w<<wordPot + bits.TrailingZeros(v)
	}
	for w++; w < len(words); w++ {
		if v := words[w]; v != 0 {
			return w<<wordPot + bits.TrailingZeros(v)
		}
	}
	return None
}

// PrevSetBit returns the highest set index strictly below bit, or None.
//
// Unlike NextSetBit the bound is exclusive, so PrevSetBit(i) never returns i
// and PrevSetBit(0) is always None.
func (b *BitSet[A]) PrevSetBit(bit int) int {
	if bit <= 0 {
		return None
	}
	last := min(bit, b.Capacity()) - 1
	words := b.words()
	w := last >> wordPot

	// Keep bits up to and including last in its word.
	if v := words[w] & (^uint(0) >> (wordMask - uint(last)&wordMask)); v != 0 {
		return w<<wordPot + wordMask - bits.LeadingZeros(v)
	}
	for w--; w >= 0; w-- {
		if v := words[w]; v != 0 {
			return w<<wordPot + wordMask - bits.LeadingZeros(v)
		}
	}
	return None
}
