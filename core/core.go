package core

// Mode identifies how a request is executed: one of the single-agent
// reasoning strategies, or a multi-agent collaboration. The set is closed;
// dispatch happens through one runner implementation per variant.
type Mode string

const (
	// ModeDirect answers with a single "think step by step" generation,
	// parsed into numbered thoughts plus an extracted final answer.
	ModeDirect Mode = "direct"

	// ModeIterative loops thought -> action -> observation up to a fixed
	// iteration cap, stopping early when the action contains ANSWER.
	ModeIterative Mode = "iterative"

	// ModeBranchSelect generates several candidate approaches in one call,
	// then issues one more call conditioned on the chosen path.
	ModeBranchSelect Mode = "branch-select"

	// ModeDraftCritiqueRevise makes three sequential calls: a draft, a
	// critique of the draft, and a revision given both.
	ModeDraftCritiqueRevise Mode = "draft-critique-revise"

	// ModeCollaboration executes a multi-agent topology over agents
	// resolved from the registry.
	ModeCollaboration Mode = "collaboration"
)

// Strategy reports whether the mode is a single-agent reasoning strategy.
func (m Mode) Strategy() bool {
	switch m {
	case ModeDirect, ModeIterative, ModeBranchSelect, ModeDraftCritiqueRevise:
		return true
	default:
		return false
	}
}

// Valid reports whether the mode belongs to the closed set.
func (m Mode) Valid() bool {
	return m.Strategy() || m == ModeCollaboration
}

// Topology identifies the data-flow pattern among collaborating agents for
// one task.
type Topology string

const (
	// TopologySequential chains agents so each output becomes the next
	// agent's input. A single broken link invalidates downstream work.
	TopologySequential Topology = "sequential"

	// TopologyParallel fans the same task out to every agent concurrently
	// and merges the successful outputs with one synthesis call.
	TopologyParallel Topology = "parallel"

	// TopologyHierarchical has a leader decompose the task into subtasks,
	// dispatches them to workers concurrently, then asks the leader to
	// synthesize the worker outputs.
	TopologyHierarchical Topology = "hierarchical"
)

// Valid reports whether the topology belongs to the closed set.
func (t Topology) Valid() bool {
	switch t {
	case TopologySequential, TopologyParallel, TopologyHierarchical:
		return true
	default:
		return false
	}
}

// Actor labels for strategy phases recorded in step traces. Collaboration
// steps use the agent id as actor instead.
const (
	ActorDraft     = "draft"
	ActorCritique  = "critique"
	ActorRevision  = "revision"
	ActorSelection = "selection"
)
