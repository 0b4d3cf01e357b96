package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

const selectionInstructions = "Follow the chosen approach and produce the " +
	"final answer for the task. Be concrete and complete."

// BranchSelectStrategy asks for several distinct candidate approaches in a
// single call, picks the first, and produces the final answer conditioned
// on it with one more call.
//
// The generator is asked for a RANKING line and the ranking is parsed and
// logged, but selection stays positional: the first candidate always wins.
type BranchSelectStrategy struct {
	base
}

// Mode returns core.ModeBranchSelect.
func (s *BranchSelectStrategy) Mode() core.Mode { return core.ModeBranchSelect }

// Run executes the strategy.
func (s *BranchSelectStrategy) Run(ctx context.Context, input string) (*core.ExecutionResult, error) {
	started := time.Now()

	instructions := fmt.Sprintf("Propose exactly %d distinct approaches to "+
		"the task, one per line. After them, add a line starting with "+
		"\"RANKING:\" ordering the approaches from most to least promising.",
		s.opts.Branches)

	resp, err := s.call(ctx, instructions, input)
	if err != nil {
		return nil, err
	}

	candidates, ranking := parseCandidates(resp.Text, s.opts.Branches)
	if len(candidates) == 0 {
		candidates = []string{strings.TrimSpace(resp.Text)}
	}
	if ranking != "" {
		s.opts.Logger.Debug("branch ranking received", "ranking", ranking)
	}

	steps := make([]core.StepTrace, 0, len(candidates)+1)
	for i, candidate := range candidates {
		steps = append(steps, core.StepTrace{
			StepNumber: i + 1,
			Actor:      fmt.Sprintf("candidate-%d", i+1),
			Input:      input,
			Output:     candidate,
			StartedAt:  started,
			Duration:   resp.Latency,
			Success:    true,
		})
	}
	steps[0].TokensUsed = resp.Usage.TotalTokens

	chosen := candidates[0]

	selStart := time.Now()
	selection, err := s.call(ctx, selectionInstructions,
		fmt.Sprintf("Task: %s\n\nBest path: %s", input, chosen))
	if err != nil {
		return nil, err
	}
	final := strings.TrimSpace(selection.Text)

	steps = append(steps, core.StepTrace{
		StepNumber: len(steps) + 1,
		Actor:      core.ActorSelection,
		Input:      chosen,
		Output:     final,
		StartedAt:  selStart,
		Duration:   selection.Latency,
		TokensUsed: selection.Usage.TotalTokens,
		Success:    true,
	})

	result := core.NewExecutionResult(core.ModeBranchSelect, "", steps, final, true)
	result.TotalDuration = time.Since(started)
	return result, nil
}
