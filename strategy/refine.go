package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

const (
	draftInstructions = "Produce a focused first draft answering the task. " +
		"Prefer substance over polish."

	critiqueInstructions = "Critique the draft against the task. Name " +
		"concrete weaknesses, gaps and errors; do not rewrite it."

	revisionInstructions = "Rewrite the draft into a final answer that " +
		"resolves every point of the critique."
)

// RefineStrategy runs the draft, critique and revision phases in order.
// The three steps carry fixed phase confidences that feed the projection.
type RefineStrategy struct {
	base
}

// Mode returns core.ModeDraftCritiqueRevise.
func (s *RefineStrategy) Mode() core.Mode { return core.ModeDraftCritiqueRevise }

// Run executes the three phases. The final text is the revision.
func (s *RefineStrategy) Run(ctx context.Context, input string) (*core.ExecutionResult, error) {
	started := time.Now()

	draftStart := time.Now()
	draft, err := s.call(ctx, draftInstructions, input)
	if err != nil {
		return nil, err
	}
	draftText := strings.TrimSpace(draft.Text)

	critiqueStart := time.Now()
	critique, err := s.call(ctx, critiqueInstructions,
		fmt.Sprintf("Task:\n%s\n\nDraft:\n%s", input, draftText))
	if err != nil {
		return nil, err
	}
	critiqueText := strings.TrimSpace(critique.Text)

	revisionStart := time.Now()
	revision, err := s.call(ctx, revisionInstructions,
		fmt.Sprintf("Task:\n%s\n\nDraft:\n%s\n\nCritique:\n%s", input, draftText, critiqueText))
	if err != nil {
		return nil, err
	}
	final := strings.TrimSpace(revision.Text)

	steps := []core.StepTrace{
		{
			StepNumber: 1,
			Actor:      core.ActorDraft,
			Input:      input,
			Output:     draftText,
			StartedAt:  draftStart,
			Duration:   draft.Latency,
			TokensUsed: draft.Usage.TotalTokens,
			Success:    true,
		},
		{
			StepNumber: 2,
			Actor:      core.ActorCritique,
			Input:      draftText,
			Output:     critiqueText,
			StartedAt:  critiqueStart,
			Duration:   critique.Latency,
			TokensUsed: critique.Usage.TotalTokens,
			Success:    true,
		},
		{
			StepNumber: 3,
			Actor:      core.ActorRevision,
			Input:      critiqueText,
			Output:     final,
			StartedAt:  revisionStart,
			Duration:   revision.Latency,
			TokensUsed: revision.Usage.TotalTokens,
			Success:    true,
		},
	}

	s.opts.Logger.Debug("refinement complete", "tokens",
		steps[0].TokensUsed+steps[1].TokensUsed+steps[2].TokensUsed)

	result := core.NewExecutionResult(core.ModeDraftCritiqueRevise, "", steps, final, true)
	result.TotalDuration = time.Since(started)
	return result, nil
}
