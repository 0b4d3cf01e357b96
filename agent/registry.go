package agent

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// Registry errors.
var (
	// ErrEmptyAgentID indicates a spec without an identifier.
	ErrEmptyAgentID = errors.New("agent id must not be empty")

	// ErrDuplicateAgent indicates a registration under an id already taken.
	ErrDuplicateAgent = errors.New("agent already registered")

	// ErrUnknownAgent indicates a lookup for an id never registered.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrEmptyAgentSet indicates a resolution request naming no agents.
	ErrEmptyAgentSet = errors.New("agent set must not be empty")
)

// Registry holds agent specifications keyed by id. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]core.AgentSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]core.AgentSpec)}
}

// Register adds a spec to the roster. The id must be non-empty and unused.
// Capabilities keep set semantics: duplicates are dropped, order preserved.
func (r *Registry) Register(spec core.AgentSpec) error {
	if spec.ID == "" {
		return ErrEmptyAgentID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[spec.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAgent, spec.ID)
	}
	stored := spec.Clone()
	stored.Capabilities = dedupe(stored.Capabilities)
	r.agents[spec.ID] = stored
	return nil
}

func dedupe(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Get returns the spec registered under id.
func (r *Registry) Get(id string) (core.AgentSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.agents[id]
	if !ok {
		return core.AgentSpec{}, fmt.Errorf("%w: %q", ErrUnknownAgent, id)
	}
	return spec.Clone(), nil
}

// Resolve maps a list of ids onto their specs, preserving order. Every id
// must be registered; resolution is all-or-nothing.
func (r *Registry) Resolve(ids []string) ([]core.AgentSpec, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyAgentSet
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]core.AgentSpec, 0, len(ids))
	for _, id := range ids {
		spec, ok := r.agents[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, id)
		}
		specs = append(specs, spec.Clone())
	}
	return specs, nil
}

// Remove deletes the spec registered under id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAgent, id)
	}
	delete(r.agents, id)
	return nil
}

// List returns all registered specs ordered by id.
func (r *Registry) List() []core.AgentSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]core.AgentSpec, 0, len(r.agents))
	for _, spec := range r.agents {
		specs = append(specs, spec.Clone())
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })
	return specs
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
