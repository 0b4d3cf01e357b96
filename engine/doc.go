// Package engine implements the execution engine that fronts the whole
// system: one entry point that accepts a request, dispatches it to a
// reasoning strategy or a collaboration topology, and returns the uniform
// execution envelope.
//
// # Core Responsibilities
//
// Dispatch:
//   - Route each request by mode to a strategy runner or, for
//     collaboration, to a topology runner over agents resolved from the
//     registry
//   - Resolve agent ids before any generator call so configuration
//     mistakes never cost tokens
//
// Resource Control:
//   - Bound concurrent executions with a non-queuing limiter; saturated
//     callers are rejected immediately with ErrTooManyExecutions
//   - Apply per-call timeouts through the runner options
//
// Bookkeeping:
//   - Stamp the total duration on every envelope
//   - Record exactly one stats sample per dispatched request
//   - Write one memory record per completed request, best-effort: a
//     failing or absent store is logged and skipped, never an error
//   - Fire lifecycle callbacks around dispatch
//
// # Error Channels
//
// Three distinct channels, never conflated:
//   - Configuration errors (empty input, unknown mode or topology,
//     unknown agent, saturation) return a Go error before dispatch and
//     leave no trace in stats or memory.
//   - Propagated generation failures (strategy runs, parallel synthesis,
//     hierarchical leader calls) return a Go error after dispatch and
//     record a failed stats sample.
//   - Recorded step failures come back as a normal envelope with
//     Success=false and diagnostic step detail.
//
// # Usage
//
//	eng := engine.New(m, func(o *engine.Options) {
//	    o.Config.MaxConcurrent = 4
//	})
//	result, err := eng.ExecuteStrategy(ctx, "Why is the sky blue?", core.ModeDirect)
//
// For collaboration, register agent specs first:
//
//	_ = eng.RegisterAgent(core.AgentSpec{ID: "researcher", Role: "research specialist"})
//	_ = eng.RegisterAgent(core.AgentSpec{ID: "writer", Role: "technical writer"})
//	result, err = eng.Collaborate(ctx, task, core.TopologySequential, "researcher", "writer")
package engine
