package collab

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/agent"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// HierarchicalTopology puts the first agent in charge: the leader
// decomposes the task into subtasks, workers execute them concurrently,
// and the leader synthesizes the final answer. Both leader calls are
// coordination calls; either failing fails the whole run.
type HierarchicalTopology struct {
	base
}

// Kind returns core.TopologyHierarchical.
func (t *HierarchicalTopology) Kind() core.Topology { return core.TopologyHierarchical }

// Run executes decomposition, delegation and synthesis.
func (t *HierarchicalTopology) Run(ctx context.Context, task string, agents []core.AgentSpec) (*core.ExecutionResult, error) {
	if len(agents) == 0 {
		return nil, agent.ErrEmptyAgentSet
	}
	if len(agents) < 2 {
		return nil, fmt.Errorf("hierarchical topology needs a leader and at least one worker: %w", agent.ErrEmptyAgentSet)
	}
	started := time.Now()
	leader, workers := agents[0], agents[1:]

	leaderInstructions, err := framing(leader, leaderPosition)
	if err != nil {
		return nil, err
	}

	decomposeStart := time.Now()
	decomposition, err := t.callAgent(ctx, leader, leaderInstructions, decomposePrompt(workers, task))
	if err != nil {
		return nil, fmt.Errorf("leader decomposition failed: %w", err)
	}
	decompositionText := strings.TrimSpace(decomposition.Text)

	steps := []core.StepTrace{{
		StepNumber: 1,
		Actor:      leader.ID,
		Input:      task,
		Output:     decompositionText,
		StartedAt:  decomposeStart,
		Duration:   decomposition.Latency,
		TokensUsed: decomposition.Usage.TotalTokens,
		Success:    true,
	}}

	subtasks := parseSubtasks(decompositionText, len(workers))
	t.opts.Logger.Debug("task decomposed", "subtasks", len(subtasks), "workers", len(workers))

	workerInstructions := make([]string, len(subtasks))
	for i := range subtasks {
		framed, err := framing(workers[i], workerPosition)
		if err != nil {
			return nil, err
		}
		workerInstructions[i] = framed
	}

	// Subtask i goes to worker i; slots keep numbering in dispatch order.
	workerSteps := make([]core.StepTrace, len(subtasks))
	var wg sync.WaitGroup
	for i := range subtasks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			spec := workers[i]
			subtask := subtasks[i]

			stepStart := time.Now()
			resp, err := t.callAgent(ctx, spec, workerInstructions[i], workerTaskPrompt(task, subtask))
			if err != nil {
				workerSteps[i] = failedStep(i+2, spec.ID, subtask, stepStart, err)
				return
			}
			workerSteps[i] = core.StepTrace{
				StepNumber: i + 2,
				Actor:      spec.ID,
				Input:      subtask,
				Output:     strings.TrimSpace(resp.Text),
				StartedAt:  stepStart,
				Duration:   resp.Latency,
				TokensUsed: resp.Usage.TotalTokens,
				Success:    true,
			}
		}(i)
	}
	wg.Wait()
	steps = append(steps, workerSteps...)

	success := true
	for _, s := range workerSteps {
		if !s.Success {
			success = false
			break
		}
	}

	// The leader's synthesis call is coordination, not a step.
	synthesisInstr, err := framing(leader, leaderSynthesisPosition)
	if err != nil {
		return nil, err
	}
	synthesis, err := t.callAgent(ctx, leader, synthesisInstr, leaderSynthesisPrompt(task, decompositionText, workerSteps))
	if err != nil {
		return nil, fmt.Errorf("leader synthesis failed: %w", err)
	}

	result := core.NewExecutionResult(core.ModeCollaboration, core.TopologyHierarchical, steps, strings.TrimSpace(synthesis.Text), success)
	result.TotalDuration = time.Since(started)
	return result, nil
}

// parseSubtasks extracts SUBTASK-marked lines from a decomposition reply,
// capped at maxWorkers. Lines are scanned case-insensitively for the
// marker; the assignment is the text after the first colon that follows
// it. With no markers, paragraphs longer than 50 characters stand in
// (capped at min(3, maxWorkers)); as a last resort the whole reply becomes
// a single subtask.
func parseSubtasks(text string, maxWorkers int) []string {
	var subtasks []string
	for _, line := range strings.Split(text, "\n") {
		upper := strings.ToUpper(line)
		idx := strings.Index(upper, "SUBTASK")
		if idx < 0 {
			continue
		}
		rest := line[idx:]
		colon := strings.Index(rest, ":")
		if colon < 0 {
			continue
		}
		if subtask := strings.TrimSpace(rest[colon+1:]); subtask != "" {
			subtasks = append(subtasks, subtask)
		}
		if len(subtasks) == maxWorkers {
			break
		}
	}
	if len(subtasks) > 0 {
		return subtasks
	}

	limit := min(3, maxWorkers)
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) > 50 {
			subtasks = append(subtasks, para)
			if len(subtasks) == limit {
				break
			}
		}
	}
	if len(subtasks) > 0 {
		return subtasks
	}

	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return []string{trimmed}
	}
	return nil
}
