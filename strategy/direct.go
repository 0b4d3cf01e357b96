package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

const directInstructions = "You are a careful reasoner. Think step by step. " +
	"Number each thought on its own line (1., 2., ...), then state your " +
	"final answer on a line starting with \"Answer:\"."

// DirectStrategy performs one generator call and decomposes the reply into
// explicit reasoning steps. A reply without numbered lines yields a single
// step holding the whole reply.
type DirectStrategy struct {
	base
}

// Mode returns core.ModeDirect.
func (s *DirectStrategy) Mode() core.Mode { return core.ModeDirect }

// Run executes the strategy.
func (s *DirectStrategy) Run(ctx context.Context, input string) (*core.ExecutionResult, error) {
	started := time.Now()

	resp, err := s.call(ctx, directInstructions, input)
	if err != nil {
		return nil, err
	}

	thoughts := parseNumberedThoughts(resp.Text)
	if len(thoughts) == 0 {
		thoughts = []string{strings.TrimSpace(resp.Text)}
	}

	// The parsed steps share the timing of the one call that produced them;
	// usage lands on the first step so sums never double-count.
	steps := make([]core.StepTrace, len(thoughts))
	for i, thought := range thoughts {
		steps[i] = core.StepTrace{
			StepNumber: i + 1,
			Actor:      fmt.Sprintf("thought-%d", i+1),
			Input:      input,
			Output:     thought,
			StartedAt:  started,
			Duration:   resp.Latency,
			Success:    true,
		}
	}
	steps[0].TokensUsed = resp.Usage.TotalTokens

	s.opts.Logger.Debug("direct reasoning complete", "thoughts", len(thoughts), "tokens", resp.Usage.TotalTokens)

	result := core.NewExecutionResult(core.ModeDirect, "", steps, extractAnswer(resp.Text), true)
	result.TotalDuration = time.Since(started)
	return result, nil
}
