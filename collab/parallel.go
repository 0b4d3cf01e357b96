package collab

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/agent"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// NoUsableResult is returned as the final text when every parallel branch
// failed and no synthesis was possible.
const NoUsableResult = "No collaborating agent produced a usable result, so no synthesis was possible."

// ParallelTopology fans the same task out to every agent concurrently and
// merges the successful outputs with one synthesis call. Branch failures
// never abort sibling branches; the trace always holds one step per agent,
// numbered by input order.
type ParallelTopology struct {
	base
}

// Kind returns core.TopologyParallel.
func (t *ParallelTopology) Kind() core.Topology { return core.TopologyParallel }

// Run executes the fan-out and synthesis.
func (t *ParallelTopology) Run(ctx context.Context, task string, agents []core.AgentSpec) (*core.ExecutionResult, error) {
	if len(agents) == 0 {
		return nil, agent.ErrEmptyAgentSet
	}
	started := time.Now()

	instructions := make([]string, len(agents))
	for i, spec := range agents {
		framed, err := framing(spec, parallelPosition)
		if err != nil {
			return nil, err
		}
		instructions[i] = framed
	}

	// One goroutine per agent writing into its own slot keeps step order
	// deterministic regardless of completion order.
	steps := make([]core.StepTrace, len(agents))
	var wg sync.WaitGroup
	for i := range agents {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			spec := agents[i]

			stepStart := time.Now()
			resp, err := t.callAgent(ctx, spec, instructions[i], task)
			if err != nil {
				steps[i] = failedStep(i+1, spec.ID, task, stepStart, err)
				return
			}
			steps[i] = core.StepTrace{
				StepNumber: i + 1,
				Actor:      spec.ID,
				Input:      task,
				Output:     strings.TrimSpace(resp.Text),
				StartedAt:  stepStart,
				Duration:   resp.Latency,
				TokensUsed: resp.Usage.TotalTokens,
				Success:    true,
			}
		}(i)
	}
	wg.Wait()

	success := true
	successful := make([]core.StepTrace, 0, len(steps))
	for _, s := range steps {
		if s.Success {
			successful = append(successful, s)
		} else {
			success = false
		}
	}

	if len(successful) == 0 {
		t.opts.Logger.Warn("all parallel branches failed", "agents", len(agents))
		result := core.NewExecutionResult(core.ModeCollaboration, core.TopologyParallel, steps, NoUsableResult, false)
		result.TotalDuration = time.Since(started)
		return result, nil
	}

	// Synthesis merges only the successful branches and is not a step.
	resp, err := t.call(ctx, synthesisInstructions, synthesisPrompt(task, successful))
	if err != nil {
		return nil, err
	}

	result := core.NewExecutionResult(core.ModeCollaboration, core.TopologyParallel, steps, strings.TrimSpace(resp.Text), success)
	result.TotalDuration = time.Since(started)
	return result, nil
}
