package model

import (
	"context"
	"fmt"
	"time"
)

// Generate performs a single call against m with a per-call deadline. It
// measures wall latency when the implementation does not report one, and
// guarantees the returned error, if any, is classified.
func Generate(ctx context.Context, m Model, req Request, timeout time.Duration) (*Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := m.Generate(ctx, req)
	if err != nil {
		return nil, Classify(err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: model %q returned no response", ErrInvalidResponse, m.Info().Name)
	}
	if resp.Latency == 0 {
		resp.Latency = time.Since(start)
	}
	return resp, nil
}
