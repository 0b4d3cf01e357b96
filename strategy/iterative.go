package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/tool"
)

const (
	thoughtInstructions = "You reason in short steps. Given the task and " +
		"the observations so far, state your next thought in one or two sentences."

	actionInstructions = "Decide the next action for the task. Reply with " +
		"exactly one of SEARCH, CALCULATE, ANALYZE or ANSWER, followed by a " +
		"colon and the subject, e.g. \"SEARCH: largest moon of Saturn\". " +
		"Use ANSWER when you can state the final answer."
)

// IterativeStrategy alternates generated thoughts and actions with
// observations from the action executor, looping until the model answers
// or the iteration cap is reached.
type IterativeStrategy struct {
	base
}

// Mode returns core.ModeIterative.
func (s *IterativeStrategy) Mode() core.Mode { return core.ModeIterative }

// Run executes the loop. Each iteration makes two generator calls (thought,
// then action) and records one step whose output is the observation.
func (s *IterativeStrategy) Run(ctx context.Context, input string) (*core.ExecutionResult, error) {
	started := time.Now()

	var steps []core.StepTrace
	var observations []string

	for i := 0; i < s.opts.MaxIterations; i++ {
		iterStart := time.Now()

		thought, err := s.call(ctx, thoughtInstructions, thoughtPrompt(input, observations))
		if err != nil {
			return nil, err
		}
		thoughtText := strings.TrimSpace(thought.Text)

		action, err := s.call(ctx, actionInstructions, actionPrompt(input, thoughtText))
		if err != nil {
			return nil, err
		}
		actionText := strings.TrimSpace(action.Text)
		kind := tool.ClassifyAction(actionText)

		observation, err := s.opts.Executor.Execute(ctx, kind, actionSubject(actionText))
		if err != nil {
			return nil, fmt.Errorf("execute %s action: %w", kind, err)
		}

		steps = append(steps, core.StepTrace{
			StepNumber: i + 1,
			Actor:      fmt.Sprintf("iteration-%d", i+1),
			Input:      fmt.Sprintf("Thought: %s\nAction: %s", thoughtText, actionText),
			Output:     observation,
			StartedAt:  iterStart,
			Duration:   time.Since(iterStart),
			TokensUsed: thought.Usage.TotalTokens + action.Usage.TotalTokens,
			Success:    true,
		})
		observations = append(observations, observation)

		if kind == tool.ActionAnswer {
			s.opts.Logger.Debug("iterative loop answered", "iterations", i+1)
			break
		}
	}

	final := steps[len(steps)-1].Output
	result := core.NewExecutionResult(core.ModeIterative, "", steps, final, true)
	result.TotalDuration = time.Since(started)
	return result, nil
}

func thoughtPrompt(input string, observations []string) string {
	var sb strings.Builder
	sb.WriteString("Task: ")
	sb.WriteString(input)
	for i, obs := range observations {
		fmt.Fprintf(&sb, "\nObservation %d: %s", i+1, obs)
	}
	sb.WriteString("\n\nWhat is your next thought?")
	return sb.String()
}

func actionPrompt(input, thought string) string {
	return fmt.Sprintf("Task: %s\nCurrent thought: %s", input, thought)
}
