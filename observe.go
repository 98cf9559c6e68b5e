package ittybitty

import (
	"context"
	"sync/atomic"
)

type metricsHolder struct {
	c MetricsCollector
}

var (
	logger  atomic.Pointer[Logger]
	metrics atomic.Pointer[metricsHolder]
)

func init() {
	logger.Store(NoopLogger())
	metrics.Store(&metricsHolder{c: NoopMetricsCollector{}})
}

// SetLogger installs the process-wide logger used to report reallocations.
// A nil logger restores the silent default.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger.Store(l)
}

// SetMetricsCollector installs the process-wide collector notified of
// reallocations. A nil collector restores the no-op default.
func SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = NoopMetricsCollector{}
	}
	metrics.Store(&metricsHolder{c: c})
}

func observeGrowth(wasSpilled bool, fromWords, toWords, requestedBits int) {
	ctx := context.Background()
	if wasSpilled {
		metrics.Load().c.RecordGrow(fromWords, toWords)
		logger.Load().LogGrow(ctx, fromWords, toWords, requestedBits)
		return
	}
	metrics.Load().c.RecordSpill(fromWords, toWords)
	logger.Load().LogSpill(ctx, fromWords, toWords, requestedBits)
}
