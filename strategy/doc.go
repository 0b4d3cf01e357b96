// Package strategy implements the single-agent reasoning modes: direct
// step-by-step decomposition, the iterative thought/action/observation
// loop, branch generation with selection, and draft/critique/revision.
//
// Every strategy runs against one model.Model and produces a full
// core.ExecutionResult trace. Strategies are all-or-nothing: a failed
// generator call aborts the run and surfaces the classified error instead
// of a partial envelope.
package strategy
