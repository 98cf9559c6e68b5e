// Package mem provides the word-buffer allocation used by spilled bit sets.
//
// # Word Buffers
//
// Spilled bit sets own a single []uint whose length always equals its
// capacity, so the recorded word count matches the true allocation and any
// slack handed out by the runtime's size classes is usable immediately.
//
// # Inline Views
//
// Words reinterprets a fixed-size word array as a slice so inline and heap
// storage can share one code path.
package mem
