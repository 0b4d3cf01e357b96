package collab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/logging"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

// ErrUnknownTopology indicates a kind with no topology implementation.
var ErrUnknownTopology = errors.New("unknown collaboration topology")

// Topology coordinates a set of agents over a shared task.
type Topology interface {
	// Run executes the task across the agents and assembles the trace.
	Run(ctx context.Context, task string, agents []core.AgentSpec) (*core.ExecutionResult, error)

	// Kind returns the topology this runner implements.
	Kind() core.Topology
}

// Options configure topology execution.
type Options struct {
	// Logger receives execution logs.
	Logger logging.Logger

	// CallTimeout bounds every generator call.
	CallTimeout time.Duration

	// MaxTokens caps each reply unless the agent spec overrides it.
	MaxTokens int

	// Temperature for generator calls unless the agent spec overrides it.
	Temperature float64
}

func defaultOptions() Options {
	return Options{
		Logger:      logging.NoOpLogger{},
		CallTimeout: 60 * time.Second,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// New creates the topology implementing kind.
func New(kind core.Topology, m model.Model, optFns ...func(o *Options)) (Topology, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	b := base{model: m, opts: opts}
	switch kind {
	case core.TopologySequential:
		return &SequentialTopology{base: b}, nil
	case core.TopologyParallel:
		return &ParallelTopology{base: b}, nil
	case core.TopologyHierarchical:
		return &HierarchicalTopology{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, kind)
	}
}

// base bundles the model handle and options shared by all topologies.
type base struct {
	model model.Model
	opts  Options
}

// callAgent performs one generator call on behalf of an agent. Spec-level
// sampling parameters override the topology defaults.
func (b *base) callAgent(ctx context.Context, spec core.AgentSpec, instructions, prompt string) (*model.Response, error) {
	req := model.Request{
		Instructions: instructions,
		Prompt:       prompt,
		MaxTokens:    b.opts.MaxTokens,
		Temperature:  b.opts.Temperature,
	}
	if spec.Params.MaxOutputTokens > 0 {
		req.MaxTokens = spec.Params.MaxOutputTokens
	}
	if spec.Params.Temperature > 0 {
		req.Temperature = spec.Params.Temperature
	}
	return model.Generate(ctx, b.model, req, b.opts.CallTimeout)
}

// call performs one coordination call (synthesis) with the topology
// defaults.
func (b *base) call(ctx context.Context, instructions, prompt string) (*model.Response, error) {
	return model.Generate(ctx, b.model, model.Request{
		Instructions: instructions,
		Prompt:       prompt,
		MaxTokens:    b.opts.MaxTokens,
		Temperature:  b.opts.Temperature,
	}, b.opts.CallTimeout)
}

// failedStep assembles the trace entry for a failed agent invocation.
func failedStep(number int, actor, input string, startedAt time.Time, err error) core.StepTrace {
	return core.StepTrace{
		StepNumber:   number,
		Actor:        actor,
		Input:        input,
		StartedAt:    startedAt,
		Duration:     time.Since(startedAt),
		Success:      false,
		ErrorCode:    model.KindOf(err),
		ErrorMessage: err.Error(),
	}
}
