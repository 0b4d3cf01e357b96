package core

// ModelParams carries the generation parameters an agent applies to every
// call it makes.
type ModelParams struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
}

// AgentSpec describes one named agent available for collaboration: its
// unique id, the role it plays, free-form capability tags, generation
// parameters and system instructions. Specs are pure data owned by the
// registry; topology runners receive resolved copies and never mutate them.
type AgentSpec struct {
	// ID is the unique, immutable registry key.
	ID string `json:"id"`

	// Role is a short human-readable description ("researcher", "critic").
	Role string `json:"role"`

	// Capabilities is a set of tags; duplicates are removed on
	// registration.
	Capabilities []string `json:"capabilities,omitempty"`

	// Params are applied to every generator call this agent makes.
	Params ModelParams `json:"model_params"`

	// SystemInstructions is prepended to every prompt for this agent.
	SystemInstructions string `json:"system_instructions,omitempty"`
}

// Clone returns a deep copy so callers can hold a spec without sharing the
// capabilities slice with the registry.
func (s AgentSpec) Clone() AgentSpec {
	out := s
	if s.Capabilities != nil {
		out.Capabilities = make([]string, len(s.Capabilities))
		copy(out.Capabilities, s.Capabilities)
	}
	return out
}

// HasCapability reports whether the spec carries the given tag.
func (s AgentSpec) HasCapability(tag string) bool {
	for _, c := range s.Capabilities {
		if c == tag {
			return true
		}
	}
	return false
}
