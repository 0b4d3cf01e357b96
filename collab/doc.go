// Package collab implements the multi-agent collaboration topologies:
// sequential chains, parallel fan-out with synthesis, and hierarchical
// delegation through a leader.
//
// Topologies record one step per agent invocation and keep step numbering
// deterministic: parallel branches and delegated subtasks are numbered by
// dispatch order, never by completion order. Generation failures inside a
// chain or a branch are recorded on the trace instead of raised;
// coordination calls (parallel synthesis, leader decomposition and
// synthesis) fail the whole run.
package collab
