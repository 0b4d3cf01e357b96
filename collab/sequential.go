package collab

import (
	"context"
	"strings"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/agent"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// SequentialTopology runs agents as a chain: each agent's output becomes
// the next agent's input. The chain is fail-fast: a failed step ends the
// run, is recorded on the trace, and the envelope (not a Go error) carries
// the failure.
type SequentialTopology struct {
	base
}

// Kind returns core.TopologySequential.
func (t *SequentialTopology) Kind() core.Topology { return core.TopologySequential }

// Run executes the chain.
func (t *SequentialTopology) Run(ctx context.Context, task string, agents []core.AgentSpec) (*core.ExecutionResult, error) {
	if len(agents) == 0 {
		return nil, agent.ErrEmptyAgentSet
	}
	started := time.Now()

	steps := make([]core.StepTrace, 0, len(agents))
	current := task
	lastGood := ""
	success := true

	for i, spec := range agents {
		instructions, err := framing(spec, sequentialPosition(i, len(agents)))
		if err != nil {
			return nil, err
		}

		var predecessor string
		if i > 0 {
			predecessor = current
		}

		stepStart := time.Now()
		resp, err := t.callAgent(ctx, spec, instructions, sequentialTaskPrompt(task, predecessor))
		if err != nil {
			steps = append(steps, failedStep(i+1, spec.ID, current, stepStart, err))
			success = false
			t.opts.Logger.Warn("sequential chain stopped", "agent", spec.ID, "step", i+1, "error", err.Error())
			break
		}

		output := strings.TrimSpace(resp.Text)
		steps = append(steps, core.StepTrace{
			StepNumber: i + 1,
			Actor:      spec.ID,
			Input:      current,
			Output:     output,
			StartedAt:  stepStart,
			Duration:   resp.Latency,
			TokensUsed: resp.Usage.TotalTokens,
			Success:    true,
		})
		current = output
		lastGood = output
	}

	result := core.NewExecutionResult(core.ModeCollaboration, core.TopologySequential, steps, lastGood, success)
	result.TotalDuration = time.Since(started)
	return result, nil
}
