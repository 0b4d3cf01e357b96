package core

import "time"

// StepTrace records one unit of work inside an execution: a single agent
// invocation, one loop iteration, or one parsed reasoning step. Ordering is
// significant and matches dispatch order within a topology; for parallel
// branches the step number is assigned by branch index at dispatch time,
// never by completion time, so traces are deterministic under concurrency.
type StepTrace struct {
	// StepNumber is the 1-based position of this step within the result.
	StepNumber int `json:"step_number"`

	// Actor is the agent id (collaboration) or strategy phase label
	// (e.g. "thought-2", "iteration-1", "candidate-3", "draft").
	Actor string `json:"actor"`

	// Input is the text this step worked from.
	Input string `json:"input"`

	// Output is the text this step produced. Empty when the step failed.
	Output string `json:"output"`

	// StartedAt and Duration bound the generator call(s) behind the step.
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	// TokensUsed is the generator usage attributed to this step. When one
	// call fans out into several parsed steps, the usage is recorded on the
	// first parsed step so summing over steps never double-counts.
	TokensUsed int `json:"tokens_used"`

	// Success reports whether the step completed. ErrorCode carries the
	// classified failure kind and ErrorMessage the detail; both are empty
	// on success.
	Success      bool   `json:"success"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ExecutionResult is the uniform envelope returned for every request. It is
// created once per request and immutable after return; the caller owns it.
type ExecutionResult struct {
	// Mode that produced this result. Topology is set only for
	// collaboration results.
	Mode     Mode     `json:"mode"`
	Topology Topology `json:"topology,omitempty"`

	// Steps is the ordered trace. Any non-degenerate result has at least
	// one step.
	Steps []StepTrace `json:"steps"`

	// FinalText is the single merged answer.
	FinalText string `json:"final_text"`

	// Confidence is a projection computed from Mode and Steps, never
	// stored independently. Always within [0, 1].
	Confidence float64 `json:"confidence"`

	// Success is the aggregate outcome. Collaboration results may carry
	// Success=false with per-step detail instead of raising an error.
	Success bool `json:"success"`

	// TotalDuration spans dispatch to envelope assembly.
	TotalDuration time.Duration `json:"total_duration"`
}

// NewExecutionResult assembles an envelope and derives its confidence from
// the steps. The runner stamps TotalDuration before returning.
func NewExecutionResult(mode Mode, topology Topology, steps []StepTrace, finalText string, success bool) *ExecutionResult {
	return &ExecutionResult{
		Mode:       mode,
		Topology:   topology,
		Steps:      steps,
		FinalText:  finalText,
		Confidence: DeriveConfidence(mode, steps),
		Success:    success,
	}
}

// TokensUsed sums the generator usage attributed to all steps.
func (r *ExecutionResult) TokensUsed() int {
	total := 0
	for _, s := range r.Steps {
		total += s.TokensUsed
	}
	return total
}

// FailedSteps returns the indices of steps that did not complete.
func (r *ExecutionResult) FailedSteps() []int {
	var failed []int
	for i, s := range r.Steps {
		if !s.Success {
			failed = append(failed, i)
		}
	}
	return failed
}
