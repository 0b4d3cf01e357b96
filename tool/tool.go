// Package tool implements the action execution subsystem used by the
// iterative reasoning strategy. The generator proposes an action in free
// text; ClassifyAction maps it onto a small closed set of action kinds and
// an Executor resolves the action into an observation string.
package tool

import (
	"context"
	"fmt"
	"strings"
)

// Action identifies the kind of operation a reasoning step asked for.
type Action string

const (
	// ActionSearch looks up external information.
	ActionSearch Action = "SEARCH"

	// ActionCalculate evaluates a computation.
	ActionCalculate Action = "CALCULATE"

	// ActionAnalyze examines material already gathered.
	ActionAnalyze Action = "ANALYZE"

	// ActionAnswer signals the reasoning loop should stop and answer.
	ActionAnswer Action = "ANSWER"
)

// ClassifyAction maps free-form action text onto an Action by
// case-insensitive substring match. ANSWER takes precedence so a reply that
// both searches and answers terminates the loop. Text matching nothing
// classifies as ANALYZE.
func ClassifyAction(text string) Action {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, string(ActionAnswer)):
		return ActionAnswer
	case strings.Contains(upper, string(ActionSearch)):
		return ActionSearch
	case strings.Contains(upper, string(ActionCalculate)):
		return ActionCalculate
	default:
		return ActionAnalyze
	}
}

// Executor resolves a classified action into an observation.
//
// Implementations must be safe for concurrent use; the iterative strategy
// shares one executor across runs.
type Executor interface {
	Execute(ctx context.Context, action Action, input string) (string, error)
}

// Simulator is a deterministic Executor returning canned observations. It
// stands in for real tool dispatch (web search, calculators) so reasoning
// loops can run without external services.
type Simulator struct{}

// NewSimulator creates a stub executor.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Execute returns a canned observation for the action. ANSWER passes the
// input through unchanged: the proposed answer is the observation, which
// lets the reasoning loop surface it as the final text.
func (s *Simulator) Execute(ctx context.Context, action Action, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch action {
	case ActionAnswer:
		return input, nil
	case ActionSearch:
		return fmt.Sprintf("Simulated search results relevant to: %s", truncate(input, 120)), nil
	case ActionCalculate:
		return fmt.Sprintf("Simulated calculation derived from: %s", truncate(input, 120)), nil
	default:
		return fmt.Sprintf("Simulated analysis of: %s", truncate(input, 120)), nil
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
