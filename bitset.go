package ittybitty

import (
	"math/bits"

	"github.com/atlv24/ittybitty/internal/mem"
)

const (
	// wordBits is the number of bits per storage word (W).
	wordBits = bits.UintSize
	wordPot  = 5 + wordBits/64 // log2(wordBits)
	wordMask = wordBits - 1

	// heapFlag is the reserved top bit of the last inline word.
	// When set, the set has spilled and the remaining bits of that word hold
	// the heap word count.
	heapFlag = uint(1) << (wordBits - 1)
)

// None is returned by scans when no qualifying set bit exists.
const None = -1

// Words is the set of inline storage shapes a BitSet can be instantiated with.
// The array length is the inline word count N; at least two words are needed
// so the last one can double as the heap flag and word count.
type Words interface {
	[2]uint | [3]uint | [4]uint | [5]uint | [6]uint | [7]uint | [8]uint | [16]uint | [32]uint
}

// BitSet is a growable set of non-negative integers optimized for small,
// low-cardinality sets.
//
// The first len(A)*W - 1 bits live inline in A (W = bits.UintSize). Setting a
// bit beyond that spills the set to a heap buffer, after which the inline
// words are unused. The zero value is an empty inline set ready to use.
//
// A BitSet must not be copied by value once it has spilled: both copies would
// share the heap buffer. Use Clone for an independent copy.
//
// BitSet is not safe for concurrent mutation. Concurrent readers are fine as
// long as no writer is active.
type BitSet[A Words] struct {
	data A
	heap []uint
}

// Common inline sizes.
type (
	// Small holds 2*W - 1 bits inline (127 on 64-bit platforms).
	Small = BitSet[[2]uint]
	// Medium holds 4*W - 1 bits inline (255 on 64-bit platforms).
	Medium = BitSet[[4]uint]
	// Large holds 8*W - 1 bits inline (511 on 64-bit platforms).
	Large = BitSet[[8]uint]
)

// New returns an empty inline BitSet.
func New[A Words]() *BitSet[A] {
	return &BitSet[A]{}
}

// WithCapacity returns an empty BitSet able to hold at least bits bits
// without reallocating. Hints within the inline capacity stay inline.
func WithCapacity[A Words](bits int) *BitSet[A] {
	b := &BitSet[A]{}
	if bits <= b.inlineCapacity() {
		return b
	}
	b.spill(mem.AllocWords(wordsNeeded(bits)))
	return b
}

// InlineCapacity returns the number of bits a BitSet[A] holds without
// allocating.
func InlineCapacity[A Words]() int {
	var a A
	return len(a)*wordBits - 1
}

func wordsNeeded(n int) int {
	if n > maxBits {
		panic("ittybitty: bit index overflows word count")
	}
	return (n + wordMask) >> wordPot
}

// maxBits keeps wordsNeeded from overflowing and the word count clear of
// the heap flag.
const maxBits = int(^uint(0)>>1) - wordMask

func (b *BitSet[A]) inline() []uint {
	return mem.Words(&b.data)
}

func (b *BitSet[A]) inlineCapacity() int {
	return len(b.data)*wordBits - 1
}

func (b *BitSet[A]) flagWord() uint {
	return b.data[len(b.data)-1]
}

// Spilled reports whether the set has moved its bits to the heap.
func (b *BitSet[A]) Spilled() bool {
	return b.flagWord()&heapFlag != 0
}

// words returns the live storage: the heap buffer once spilled, the inline
// array otherwise.
func (b *BitSet[A]) words() []uint {
	if b.Spilled() {
		return b.heap
	}
	return b.inline()
}

// Capacity returns the number of representable bits. Indices below it can
// be read and written without reallocation.
func (b *BitSet[A]) Capacity() int {
	if b.Spilled() {
		return int(b.flagWord()&^heapFlag) * wordBits
	}
	return b.inlineCapacity()
}

// spill installs buf as the heap storage and records its word count in the
// flag word. The abandoned inline words are zeroed.
func (b *BitSet[A]) spill(buf []uint) {
	inline := b.inline()
	clear(inline)
	b.heap = buf
	inline[len(inline)-1] = uint(len(buf)) | heapFlag
}

// reallocate grows storage so at least minBits bits are representable.
// Growth is by at least one word past the current allocation, and the
// recorded word count always matches the buffer's full capacity.
func (b *BitSet[A]) reallocate(minBits int) {
	if minBits <= b.Capacity() {
		return
	}

	spilled := b.Spilled()
	from := len(b.words())
	target := max(wordsNeeded(minBits), from+1)

	var buf []uint
	if spilled {
		buf = mem.GrowWords(b.heap, target)
	} else {
		buf = mem.CloneWords(b.inline(), target)
	}
	b.spill(buf)

	observeGrowth(spilled, from, len(buf), minBits)
}

// Reset empties the set and releases any heap storage, returning it to
// inline mode.
func (b *BitSet[A]) Reset() {
	clear(b.inline())
	b.heap = nil
}

// Clone returns a deep copy of b. The copy never shares heap storage with b.
func (b *BitSet[A]) Clone() *BitSet[A] {
	c := &BitSet[A]{data: b.data}
	if b.Spilled() {
		c.heap = mem.AllocWords(len(b.heap))
		copy(c.heap, b.heap)
	}
	return c
}
