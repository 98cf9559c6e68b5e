package ittybitty

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    spills prometheus.Counter
//	    words  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSpill(fromWords, toWords int) {
//	    p.spills.Inc()
//	    p.words.Observe(float64(toWords))
//	}
//
// Collectors are called synchronously from the mutating call that caused the
// reallocation and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordSpill is called when a set moves from inline to heap storage.
	// fromWords is the inline word count, toWords the new heap word count.
	RecordSpill(fromWords, toWords int)

	// RecordGrow is called when an already spilled set reallocates.
	RecordGrow(fromWords, toWords int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSpill(int, int) {}
func (NoopMetricsCollector) RecordGrow(int, int)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SpillCount     atomic.Int64
	GrowCount      atomic.Int64
	WordsAllocated atomic.Int64
	MaxWords       atomic.Int64
}

// RecordSpill implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSpill(fromWords, toWords int) {
	b.SpillCount.Add(1)
	b.WordsAllocated.Add(int64(toWords))
	b.observeMax(toWords)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(fromWords, toWords int) {
	b.GrowCount.Add(1)
	b.WordsAllocated.Add(int64(toWords))
	b.observeMax(toWords)
}

func (b *BasicMetricsCollector) observeMax(words int) {
	for {
		cur := b.MaxWords.Load()
		if int64(words) <= cur || b.MaxWords.CompareAndSwap(cur, int64(words)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SpillCount:     b.SpillCount.Load(),
		GrowCount:      b.GrowCount.Load(),
		WordsAllocated: b.WordsAllocated.Load(),
		MaxWords:       b.MaxWords.Load(),
	}
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	SpillCount     int64
	GrowCount      int64
	WordsAllocated int64 // total words handed out across all reallocations
	MaxWords       int64 // largest single heap buffer, in words
}
