package strategy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/logging"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/tool"
)

// ErrUnknownStrategy indicates a mode with no strategy implementation.
var ErrUnknownStrategy = errors.New("unknown reasoning strategy")

// Strategy runs a single-agent reasoning mode over an input and produces a
// full execution trace.
type Strategy interface {
	// Run executes the strategy. A generator call failure aborts the whole
	// run and surfaces the classified error; partial steps are discarded.
	Run(ctx context.Context, input string) (*core.ExecutionResult, error)

	// Mode returns the reasoning mode this strategy implements.
	Mode() core.Mode
}

// Options configure strategy execution.
type Options struct {
	// Logger receives execution logs.
	Logger logging.Logger

	// CallTimeout bounds every generator call.
	CallTimeout time.Duration

	// MaxTokens caps each reply. Zero uses the model default.
	MaxTokens int

	// Temperature for generator calls.
	Temperature float64

	// Branches is the number of candidate approaches branch-select requests.
	Branches int

	// MaxIterations caps the iterative thought/action loop.
	MaxIterations int

	// Executor resolves iterative actions into observations.
	Executor tool.Executor
}

func defaultOptions() Options {
	return Options{
		Logger:        logging.NoOpLogger{},
		CallTimeout:   60 * time.Second,
		MaxTokens:     1024,
		Temperature:   0.7,
		Branches:      3,
		MaxIterations: 5,
		Executor:      tool.NewSimulator(),
	}
}

// New creates the strategy implementing mode.
func New(mode core.Mode, m model.Model, optFns ...func(o *Options)) (Strategy, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Branches <= 0 {
		opts.Branches = 3
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 5
	}
	if opts.Executor == nil {
		opts.Executor = tool.NewSimulator()
	}

	b := base{model: m, opts: opts}
	switch mode {
	case core.ModeDirect:
		return &DirectStrategy{base: b}, nil
	case core.ModeIterative:
		return &IterativeStrategy{base: b}, nil
	case core.ModeBranchSelect:
		return &BranchSelectStrategy{base: b}, nil
	case core.ModeDraftCritiqueRevise:
		return &RefineStrategy{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, mode)
	}
}

// base bundles the model handle and options shared by all strategies.
type base struct {
	model model.Model
	opts  Options
}

// call performs one generator call with the configured timeout and
// sampling parameters.
func (b *base) call(ctx context.Context, instructions, prompt string) (*model.Response, error) {
	return model.Generate(ctx, b.model, model.Request{
		Instructions: instructions,
		Prompt:       prompt,
		MaxTokens:    b.opts.MaxTokens,
		Temperature:  b.opts.Temperature,
	}, b.opts.CallTimeout)
}
