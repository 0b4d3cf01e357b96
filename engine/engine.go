package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/agent"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/collab"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/logging"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/memory"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/stats"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/strategy"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/tool"
)

var (
	// ErrEmptyInput indicates a request whose input is empty or whitespace.
	ErrEmptyInput = errors.New("input must not be empty")

	// ErrTooManyExecutions indicates the concurrent execution limit is
	// reached. Callers are rejected rather than queued.
	ErrTooManyExecutions = errors.New("too many concurrent executions")
)

// Config defines the engine's operational parameters. Request-level
// overrides (Request.MaxTokens, Request.Temperature) and agent-level
// parameters take precedence over these defaults.
type Config struct {
	// CallTimeout bounds every generator call.
	CallTimeout time.Duration

	// MaxConcurrent limits simultaneous executions. 0 means unbounded.
	MaxConcurrent int

	// DefaultMaxTokens caps each generated reply.
	DefaultMaxTokens int

	// DefaultTemperature for generator calls.
	DefaultTemperature float64

	// BranchCount is the number of candidates the branch-select strategy
	// requests.
	BranchCount int

	// MaxIterations caps the iterative strategy's loop.
	MaxIterations int
}

// DefaultConfig holds production-ready defaults.
var DefaultConfig = Config{
	CallTimeout:        60 * time.Second,
	MaxConcurrent:      10,
	DefaultMaxTokens:   1024,
	DefaultTemperature: 0.7,
	BranchCount:        3,
	MaxIterations:      5,
}

// Options configure an Engine. Every dependency has a working in-process
// default so the zero configuration runs out of the box.
type Options struct {
	// Config contains the operational parameters. Defaults to
	// DefaultConfig.
	Config Config

	// Registry holds the agent specifications available for
	// collaboration. Defaults to an empty registry.
	Registry *agent.Registry

	// MemoryStore receives one record per completed request. Defaults to
	// the in-memory store; set to nil to disable persistence.
	MemoryStore core.MemoryStore

	// Stats aggregates per-request samples. Defaults to a fresh
	// aggregator.
	Stats *stats.Aggregator

	// Logger receives structured execution logs. Defaults to NoOpLogger.
	Logger logging.Logger

	// ActionExecutor runs the iterative strategy's actions. Defaults to
	// the built-in simulator.
	ActionExecutor tool.Executor

	// Callbacks holds the lifecycle hooks. Defaults to an empty manager.
	Callbacks *CallbackManager
}

// Request describes one execution.
type Request struct {
	// Input is the task or question. Required.
	Input string

	// Mode selects the strategy, or collaboration.
	Mode core.Mode

	// Topology selects the collaboration pattern. Collaboration mode
	// only.
	Topology core.Topology

	// AgentIDs name the registered agents to collaborate. Collaboration
	// mode only; resolved before any generator call.
	AgentIDs []string

	// MaxTokens overrides Config.DefaultMaxTokens when > 0.
	MaxTokens int

	// Temperature overrides Config.DefaultTemperature when > 0.
	Temperature float64
}

// Engine dispatches requests to strategy and topology runners and keeps
// the process-wide bookkeeping: concurrency bound, running statistics,
// and the episodic memory trail.
//
// The Engine is safe for concurrent use.
type Engine struct {
	model       model.Model
	config      Config
	registry    *agent.Registry
	memoryStore core.MemoryStore
	stats       *stats.Aggregator
	logger      logging.Logger
	executor    tool.Executor
	callbacks   *CallbackManager
	limiter     *core.Limiter
}

// New creates an Engine around the given generation client.
func New(m model.Model, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:         DefaultConfig,
		Registry:       agent.NewRegistry(),
		MemoryStore:    memory.NewInMemoryStore(),
		Stats:          stats.NewAggregator(),
		Logger:         logging.NoOpLogger{},
		ActionExecutor: tool.NewSimulator(),
		Callbacks:      NewCallbackManager(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Registry == nil {
		opts.Registry = agent.NewRegistry()
	}
	if opts.Stats == nil {
		opts.Stats = stats.NewAggregator()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.ActionExecutor == nil {
		opts.ActionExecutor = tool.NewSimulator()
	}
	if opts.Callbacks == nil {
		opts.Callbacks = NewCallbackManager()
	}

	return &Engine{
		model:       m,
		config:      opts.Config,
		registry:    opts.Registry,
		memoryStore: opts.MemoryStore,
		stats:       opts.Stats,
		logger:      opts.Logger,
		executor:    opts.ActionExecutor,
		callbacks:   opts.Callbacks,
		limiter:     core.NewLimiter(opts.Config.MaxConcurrent),
	}
}

// Execute runs one request end to end: validate, resolve agents, dispatch
// to the runner, then record stats and the memory trail.
//
// Configuration errors (empty input, unknown mode or topology, unknown
// agent ids, saturation) return before dispatch and leave no trace.
// Runner errors record a failed stats sample and propagate. Recorded step
// failures come back as an envelope with Success=false and a nil error.
func (e *Engine) Execute(ctx context.Context, req Request) (*core.ExecutionResult, error) {
	if strings.TrimSpace(req.Input) == "" {
		return nil, ErrEmptyInput
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if !e.limiter.Acquire() {
		return nil, fmt.Errorf("%w: limit %d", ErrTooManyExecutions, e.config.MaxConcurrent)
	}
	defer e.limiter.Release()

	run, err := e.buildRunner(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	cbCtx := &CallbackContext{RequestID: requestID, Request: req}
	if err := e.callbacks.ExecuteCallbacks(ctx, CallbackBeforeExecute, cbCtx); err != nil {
		return nil, fmt.Errorf("before-execute callback: %w", err)
	}

	e.logger.Info("execution started",
		"request_id", requestID,
		"mode", string(req.Mode),
		"topology", string(req.Topology),
		"agents", len(req.AgentIDs),
	)

	started := time.Now()
	result, err := run(ctx)
	elapsed := time.Since(started)

	if err != nil {
		e.stats.Record(elapsed, 0, fanout(req), false)
		cbCtx.Err = err
		if cbErr := e.callbacks.ExecuteCallbacks(ctx, CallbackOnError, cbCtx); cbErr != nil {
			e.logger.Warn("on-error callback failed", "request_id", requestID, "error", cbErr.Error())
		}
		e.logger.Error("execution failed", "request_id", requestID, "mode", string(req.Mode), "error", err.Error())
		return nil, err
	}

	result.TotalDuration = elapsed
	tokens := totalTokens(result.Steps)
	e.stats.Record(elapsed, tokens, fanout(req), result.Success)
	e.recordMemory(ctx, requestID, req, result, tokens)

	cbCtx.Result = result
	if cbErr := e.callbacks.ExecuteCallbacks(ctx, CallbackAfterExecute, cbCtx); cbErr != nil {
		e.logger.Warn("after-execute callback failed", "request_id", requestID, "error", cbErr.Error())
	}

	e.logger.Info("execution finished",
		"request_id", requestID,
		"mode", string(req.Mode),
		"steps", len(result.Steps),
		"success", result.Success,
		"confidence", result.Confidence,
		"duration", elapsed.String(),
	)
	return result, nil
}

// ExecuteStrategy runs the input under a single-agent reasoning strategy.
func (e *Engine) ExecuteStrategy(ctx context.Context, input string, mode core.Mode) (*core.ExecutionResult, error) {
	return e.Execute(ctx, Request{Input: input, Mode: mode})
}

// Collaborate runs the task across the named agents under a topology.
func (e *Engine) Collaborate(ctx context.Context, task string, topology core.Topology, agentIDs ...string) (*core.ExecutionResult, error) {
	return e.Execute(ctx, Request{
		Input:    task,
		Mode:     core.ModeCollaboration,
		Topology: topology,
		AgentIDs: agentIDs,
	})
}

// RegisterAgent adds an agent spec to the engine's registry.
func (e *Engine) RegisterAgent(spec core.AgentSpec) error {
	return e.registry.Register(spec)
}

// Registry exposes the agent registry for roster loading and inspection.
func (e *Engine) Registry() *agent.Registry {
	return e.registry
}

// Stats returns a snapshot of the running execution statistics.
func (e *Engine) Stats() core.RunningStats {
	return e.stats.Snapshot()
}

// Memory exposes the memory store for queries. May be nil when
// persistence is disabled.
func (e *Engine) Memory() core.MemoryStore {
	return e.memoryStore
}

// validateRequest checks that the mode (and topology, for collaboration)
// belongs to the closed set.
func validateRequest(req Request) error {
	if req.Mode == core.ModeCollaboration {
		if !req.Topology.Valid() {
			return fmt.Errorf("%w: %q", collab.ErrUnknownTopology, req.Topology)
		}
		return nil
	}
	if !req.Mode.Strategy() {
		return fmt.Errorf("%w: %q", strategy.ErrUnknownStrategy, req.Mode)
	}
	return nil
}

// buildRunner assembles the runner closure for the request. Everything
// here is configuration: agent resolution and runner construction happen
// before any generator call.
func (e *Engine) buildRunner(req Request) (func(ctx context.Context) (*core.ExecutionResult, error), error) {
	if req.Mode == core.ModeCollaboration {
		if len(req.AgentIDs) == 0 {
			return nil, agent.ErrEmptyAgentSet
		}
		agents, err := e.registry.Resolve(req.AgentIDs)
		if err != nil {
			return nil, err
		}

		topo, err := collab.New(req.Topology, e.model, func(o *collab.Options) {
			o.Logger = e.logger
			o.CallTimeout = e.config.CallTimeout
			o.MaxTokens = e.config.DefaultMaxTokens
			o.Temperature = e.config.DefaultTemperature
			if req.MaxTokens > 0 {
				o.MaxTokens = req.MaxTokens
			}
			if req.Temperature > 0 {
				o.Temperature = req.Temperature
			}
		})
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) (*core.ExecutionResult, error) {
			return topo.Run(ctx, req.Input, agents)
		}, nil
	}

	strat, err := strategy.New(req.Mode, e.model, func(o *strategy.Options) {
		o.Logger = e.logger
		o.CallTimeout = e.config.CallTimeout
		o.MaxTokens = e.config.DefaultMaxTokens
		o.Temperature = e.config.DefaultTemperature
		o.Branches = e.config.BranchCount
		o.MaxIterations = e.config.MaxIterations
		o.Executor = e.executor
		if req.MaxTokens > 0 {
			o.MaxTokens = req.MaxTokens
		}
		if req.Temperature > 0 {
			o.Temperature = req.Temperature
		}
	})
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) (*core.ExecutionResult, error) {
		return strat.Run(ctx, req.Input)
	}, nil
}

// recordMemory writes the episodic record for a completed request.
// Failures are logged and swallowed; persistence never fails a request.
func (e *Engine) recordMemory(ctx context.Context, requestID string, req Request, result *core.ExecutionResult, tokens int) {
	if e.memoryStore == nil {
		return
	}

	tags := []string{string(result.Mode)}
	if result.Topology != "" {
		tags = append(tags, string(result.Topology))
	}

	rec := core.MemoryRecord{
		ID:         requestID,
		Mode:       result.Mode,
		Topology:   result.Topology,
		Input:      req.Input,
		FinalText:  result.FinalText,
		Confidence: result.Confidence,
		Success:    result.Success,
		Steps:      len(result.Steps),
		TokensUsed: tokens,
		Duration:   result.TotalDuration,
		Tags:       tags,
	}
	if _, err := e.memoryStore.Put(ctx, rec); err != nil {
		e.logger.Warn("memory store rejected execution record", "request_id", requestID, "error", err.Error())
	}
}

func totalTokens(steps []core.StepTrace) int {
	total := 0
	for _, s := range steps {
		total += s.TokensUsed
	}
	return total
}

// fanout is the number of agents a request engages: the agent set size
// for collaboration, one for single-agent strategies.
func fanout(req Request) int {
	if req.Mode == core.ModeCollaboration {
		return len(req.AgentIDs)
	}
	return 1
}
