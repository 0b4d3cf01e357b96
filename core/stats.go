package core

import "time"

// RunningStats is a snapshot of the process-wide aggregate counters. Means
// are maintained incrementally by the stats package, so no raw history
// backs these values.
type RunningStats struct {
	SampleCount int64         `json:"sample_count"`
	MeanLatency time.Duration `json:"mean_latency"`
	MeanTokens  float64       `json:"mean_tokens"`
	SuccessRate float64       `json:"success_rate"`
	MeanFanout  float64       `json:"mean_fanout"`
}
