package stats

import (
	"sync"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// Aggregator tracks running means over completed executions. All methods
// are safe for concurrent use; recording is serialized under one mutex so
// a snapshot is always internally consistent.
type Aggregator struct {
	mu        sync.Mutex
	count     int64
	latencyNS float64
	tokens    float64
	success   float64
	fanout    float64
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Record folds one completed execution into the running means. Each mean
// is updated incrementally: mean += (x - mean) / n.
func (a *Aggregator) Record(latency time.Duration, tokens, fanout int, success bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.count++
	n := float64(a.count)
	a.latencyNS += (float64(latency) - a.latencyNS) / n
	a.tokens += (float64(tokens) - a.tokens) / n
	a.fanout += (float64(fanout) - a.fanout) / n

	var s float64
	if success {
		s = 1
	}
	a.success += (s - a.success) / n
}

// Snapshot returns the current running statistics.
func (a *Aggregator) Snapshot() core.RunningStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return core.RunningStats{
		SampleCount: a.count,
		MeanLatency: time.Duration(a.latencyNS),
		MeanTokens:  a.tokens,
		SuccessRate: a.success,
		MeanFanout:  a.fanout,
	}
}

// Reset discards all recorded samples.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.count = 0
	a.latencyNS = 0
	a.tokens = 0
	a.success = 0
	a.fanout = 0
}
