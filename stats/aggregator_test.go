package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregator_EmptySnapshot(t *testing.T) {
	a := NewAggregator()
	snap := a.Snapshot()
	assert.Equal(t, int64(0), snap.SampleCount)
	assert.Equal(t, time.Duration(0), snap.MeanLatency)
	assert.Zero(t, snap.MeanTokens)
	assert.Zero(t, snap.SuccessRate)
	assert.Zero(t, snap.MeanFanout)
}

func TestAggregator_SingleSample(t *testing.T) {
	a := NewAggregator()
	a.Record(100*time.Millisecond, 250, 3, true)

	snap := a.Snapshot()
	assert.Equal(t, int64(1), snap.SampleCount)
	assert.Equal(t, 100*time.Millisecond, snap.MeanLatency)
	assert.InDelta(t, 250, snap.MeanTokens, 1e-9)
	assert.InDelta(t, 1.0, snap.SuccessRate, 1e-9)
	assert.InDelta(t, 3.0, snap.MeanFanout, 1e-9)
}

func TestAggregator_IncrementalMeanMatchesBatch(t *testing.T) {
	a := NewAggregator()

	latencies := []time.Duration{
		10 * time.Millisecond,
		30 * time.Millisecond,
		50 * time.Millisecond,
		110 * time.Millisecond,
	}
	tokens := []int{100, 200, 300, 400}
	fanouts := []int{1, 1, 3, 5}
	successes := []bool{true, true, false, true}

	var latencySum time.Duration
	var tokenSum, fanoutSum, successSum int
	for i := range latencies {
		a.Record(latencies[i], tokens[i], fanouts[i], successes[i])
		latencySum += latencies[i]
		tokenSum += tokens[i]
		fanoutSum += fanouts[i]
		if successes[i] {
			successSum++
		}
	}

	n := float64(len(latencies))
	snap := a.Snapshot()
	assert.Equal(t, int64(4), snap.SampleCount)
	assert.InDelta(t, float64(latencySum)/n, float64(snap.MeanLatency), 1.0)
	assert.InDelta(t, float64(tokenSum)/n, snap.MeanTokens, 1e-6)
	assert.InDelta(t, float64(fanoutSum)/n, snap.MeanFanout, 1e-6)
	assert.InDelta(t, float64(successSum)/n, snap.SuccessRate, 1e-6)
}

func TestAggregator_SuccessRateFraction(t *testing.T) {
	a := NewAggregator()
	a.Record(time.Millisecond, 10, 1, true)
	a.Record(time.Millisecond, 10, 1, false)
	a.Record(time.Millisecond, 10, 1, false)
	a.Record(time.Millisecond, 10, 1, true)

	assert.InDelta(t, 0.5, a.Snapshot().SuccessRate, 1e-9)
}

func TestAggregator_Reset(t *testing.T) {
	a := NewAggregator()
	a.Record(time.Second, 1000, 4, true)
	a.Reset()

	snap := a.Snapshot()
	assert.Equal(t, int64(0), snap.SampleCount)
	assert.Zero(t, snap.MeanTokens)
}

func TestAggregator_ConcurrentRecord(t *testing.T) {
	a := NewAggregator()

	var wg sync.WaitGroup
	const workers = 16
	const perWorker = 50
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				a.Record(20*time.Millisecond, 100, 2, true)
			}
		}()
	}
	wg.Wait()

	snap := a.Snapshot()
	assert.Equal(t, int64(workers*perWorker), snap.SampleCount)
	assert.InDelta(t, float64(20*time.Millisecond), float64(snap.MeanLatency), 1.0)
	assert.InDelta(t, 100, snap.MeanTokens, 1e-6)
	assert.InDelta(t, 1.0, snap.SuccessRate, 1e-9)
	assert.InDelta(t, 2.0, snap.MeanFanout, 1e-6)
}
