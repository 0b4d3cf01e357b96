package testutil

import (
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// SpecBuilder provides a fluent helper for constructing agent specs in
// tests. Example:
//
//	spec := testutil.NewSpec("researcher").Role("research specialist").
//		Capabilities("search", "summarize").Build()
//
// Chain only the parts you need; the role defaults to "worker".
type SpecBuilder struct {
	spec core.AgentSpec
}

// NewSpec creates a builder for an agent with the given id.
func NewSpec(id string) *SpecBuilder {
	return &SpecBuilder{spec: core.AgentSpec{ID: id, Role: "worker"}}
}

// Role sets the agent's role description (chainable).
func (b *SpecBuilder) Role(role string) *SpecBuilder {
	b.spec.Role = role
	return b
}

// Capabilities sets the agent's capability tags (chainable).
func (b *SpecBuilder) Capabilities(caps ...string) *SpecBuilder {
	b.spec.Capabilities = caps
	return b
}

// Params sets the per-agent generation parameter overrides (chainable).
func (b *SpecBuilder) Params(temperature float64, maxOutputTokens int) *SpecBuilder {
	b.spec.Params = core.ModelParams{Temperature: temperature, MaxOutputTokens: maxOutputTokens}
	return b
}

// Instructions sets the agent's system instructions (chainable).
func (b *SpecBuilder) Instructions(s string) *SpecBuilder {
	b.spec.SystemInstructions = s
	return b
}

// Build constructs the core.AgentSpec value.
func (b *SpecBuilder) Build() core.AgentSpec {
	return b.spec
}
