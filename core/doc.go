// Package core provides the foundational domain types shared by every layer
// of the execution engine. It defines:
//
//   - Mode / Topology (the closed sets of execution variants)
//   - AgentSpec (named agent specifications resolved at collaboration time)
//   - StepTrace / ExecutionResult (per-step provenance and the uniform
//     result envelope returned for every request)
//   - RunningStats (aggregate performance counters)
//   - MemoryStore (episodic persistence contract) and its record types
//   - Limiter (concurrent execution bound)
//
// The package intentionally keeps implementation concerns (generation
// clients, strategy and topology runners, persistence backends) out of
// scope, exposing small types and interfaces so higher layers stay
// decoupled and custom backends can be wired in without cycles.
package core
