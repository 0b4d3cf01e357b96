package collab

import (
	"fmt"
	"strings"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/internal/util"
)

const agentFramingTemplate = "You are {{.id}}, acting as {{.role}}." +
	"{{if .capabilities}} Your capabilities: {{join \", \" .capabilities}}.{{end}}" +
	" {{.position}}"

// framing renders the per-agent system instructions, appending any
// spec-level instructions after the positional framing.
func framing(spec core.AgentSpec, position string) (string, error) {
	rendered, err := util.RenderTemplate(agentFramingTemplate, map[string]any{
		"id":           spec.ID,
		"role":         spec.Role,
		"capabilities": spec.Capabilities,
		"position":     position,
	})
	if err != nil {
		return "", fmt.Errorf("render agent framing: %w", err)
	}
	if spec.SystemInstructions != "" {
		rendered += "\n" + spec.SystemInstructions
	}
	return rendered, nil
}

// sequentialPosition frames an agent's place in the chain.
func sequentialPosition(index, total int) string {
	switch {
	case total == 1:
		return "You are the only agent; produce the final polished result."
	case index == 0:
		return "You are the first agent in the chain; there is no predecessor output, work directly from the task."
	case index == total-1:
		return "You are the last agent in the chain; produce the final polished result."
	default:
		return fmt.Sprintf("You are agent %d of %d in the chain; your output feeds the next agent.", index+1, total)
	}
}

func sequentialTaskPrompt(task, predecessor string) string {
	if predecessor == "" {
		return task
	}
	return fmt.Sprintf("Task:\n%s\n\nOutput of the previous agent:\n%s\n\nBuild on it according to your role.", task, predecessor)
}

const parallelPosition = "You work independently; other agents tackle the " +
	"same task in parallel, and a synthesis step combines all results."

const synthesisInstructions = "You merge independent results from several " +
	"agents into one unified, non-redundant answer. Resolve conflicts " +
	"explicitly and do not mention the merging process."

func synthesisPrompt(task string, steps []core.StepTrace) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original task:\n%s\n\nIndependent results:\n", task)
	for _, s := range steps {
		fmt.Fprintf(&sb, "\n[%s]\n%s\n", s.Actor, s.Output)
	}
	sb.WriteString("\nMerge these results into one unified answer.")
	return sb.String()
}

const leaderPosition = "You coordinate a team of specialist agents: you " +
	"decompose work, delegate, and own the final result."

func decomposePrompt(workers []core.AgentSpec, task string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Task:\n%s\n\nYour team:\n", task)
	for _, w := range workers {
		if len(w.Capabilities) > 0 {
			fmt.Fprintf(&sb, "- %s (%s; capabilities: %s)\n", w.ID, w.Role, strings.Join(w.Capabilities, ", "))
		} else {
			fmt.Fprintf(&sb, "- %s (%s)\n", w.ID, w.Role)
		}
	}
	fmt.Fprintf(&sb, "\nBreak the task into at most %d subtasks, one per line, each starting with \"SUBTASK:\" followed by the assignment.", len(workers))
	return sb.String()
}

const workerPosition = "You received a delegated subtask; complete it " +
	"thoroughly, your result returns to the coordinator."

func workerTaskPrompt(task, subtask string) string {
	return fmt.Sprintf("Overall task:\n%s\n\nAssigned subtask:\n%s", task, subtask)
}

const leaderSynthesisPosition = "Your team has finished its subtasks; " +
	"combine their results into the final answer you stand behind."

func leaderSynthesisPrompt(task, decomposition string, workerSteps []core.StepTrace) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Task:\n%s\n\nYour decomposition:\n%s\n\nWorker results:\n", task, decomposition)
	for _, s := range workerSteps {
		if s.Success {
			fmt.Fprintf(&sb, "\n[%s]\n%s\n", s.Actor, s.Output)
		} else {
			fmt.Fprintf(&sb, "\n[%s]\nThe subtask failed: %s\n", s.Actor, s.ErrorMessage)
		}
	}
	sb.WriteString("\nProduce the final combined result.")
	return sb.String()
}
