// Package agiengine provides a high-level façade over the execution engine
// and its services (agent registry, statistics, episodic memory, logging)
// for building reasoning and multi-agent applications. Most applications
// interact with this package by:
//  1. Creating an AGIEngine via New() around a generation client
//     (model/openai, model/anthropic, or model.MockModel in tests)
//  2. Registering agents for collaborative work
//  3. Calling ExecuteStrategy for single-agent reasoning or Collaborate
//     for multi-agent topologies
//
// The façade delegates to engine.Engine while keeping setup concise. The
// defaults (in-memory store, no-op logger) suit local development and
// tests; applications typically supply memory.NewSQLiteStore and a
// structured logger.
package agiengine

import (
	"context"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/agent"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/engine"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/logging"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/memory"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

// Options configures the AGIEngine instance.
type Options struct {
	// EngineConfig carries timeouts, concurrency and sampling defaults.
	EngineConfig engine.Config

	// MemoryStore persists one record per completed execution. Defaults
	// to an in-memory store; set nil to disable persistence.
	MemoryStore core.MemoryStore

	// Logger receives structured execution logs. Defaults to the no-op
	// logger if nil.
	Logger logging.Logger
}

// AGIEngine is the high-level façade aggregating the underlying engine and
// its services.
type AGIEngine struct {
	opts   Options
	engine *engine.Engine
}

// New creates an AGIEngine around the given generation client with optional
// overrides. Any unset service is initialized with an in-memory
// implementation.
func New(m model.Model, optFns ...func(o *Options)) *AGIEngine {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
		MemoryStore:  memory.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	e := engine.New(m, func(o *engine.Options) {
		o.Config = opts.EngineConfig
		o.MemoryStore = opts.MemoryStore
		o.Logger = opts.Logger
	})

	return &AGIEngine{opts: opts, engine: e}
}

// RegisterAgent adds an agent to the underlying registry.
func (a *AGIEngine) RegisterAgent(spec core.AgentSpec) error {
	return a.engine.RegisterAgent(spec)
}

// Execute runs one request end to end.
func (a *AGIEngine) Execute(ctx context.Context, req engine.Request) (*core.ExecutionResult, error) {
	return a.engine.Execute(ctx, req)
}

// ExecuteStrategy runs the input under a single-agent reasoning strategy.
func (a *AGIEngine) ExecuteStrategy(ctx context.Context, input string, mode core.Mode) (*core.ExecutionResult, error) {
	return a.engine.ExecuteStrategy(ctx, input, mode)
}

// Collaborate runs the task across the named registered agents under the
// given topology.
func (a *AGIEngine) Collaborate(ctx context.Context, task string, topology core.Topology, agentIDs ...string) (*core.ExecutionResult, error) {
	return a.engine.Collaborate(ctx, task, topology, agentIDs...)
}

// Registry exposes the agent registry for bulk setup such as
// agent.RegisterRoster.
func (a *AGIEngine) Registry() *agent.Registry {
	return a.engine.Registry()
}

// Stats returns a snapshot of the running execution statistics.
func (a *AGIEngine) Stats() core.RunningStats {
	return a.engine.Stats()
}

// Memory returns the configured memory store, or nil when persistence is
// disabled.
func (a *AGIEngine) Memory() core.MemoryStore {
	return a.engine.Memory()
}
