package engine

import (
	"context"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// CallbackType names a lifecycle point where callbacks run.
type CallbackType string

const (
	// CallbackBeforeExecute fires after validation and agent resolution,
	// before dispatch. A callback error vetoes the execution.
	CallbackBeforeExecute CallbackType = "before_execute"

	// CallbackAfterExecute fires after a successful execution with the
	// result attached. Callback errors are logged, not propagated; the
	// execution already completed.
	CallbackAfterExecute CallbackType = "after_execute"

	// CallbackOnError fires when dispatch returned an error. Callback
	// errors are logged; the original error is what the caller sees.
	CallbackOnError CallbackType = "on_error"
)

// CallbackContext carries execution details into callbacks.
type CallbackContext struct {
	// RequestID is the engine-assigned id for this execution.
	RequestID string

	// Request is the request being executed.
	Request Request

	// Result is the completed envelope. Nil until after_execute.
	Result *core.ExecutionResult

	// Err is the dispatch error. Nil except for on_error.
	Err error
}

// Callback hooks into the execution lifecycle.
//
// Implementations should be fast: callbacks run synchronously on the
// request path.
type Callback interface {
	// Type returns the lifecycle point this callback handles.
	Type() CallbackType

	// Execute runs the callback. For before_execute, returning an error
	// vetoes the execution.
	Execute(ctx context.Context, cbCtx *CallbackContext) error
}

// FunctionCallback wraps a plain function as a Callback.
type FunctionCallback struct {
	callbackType CallbackType
	fn           func(ctx context.Context, cbCtx *CallbackContext) error
}

// NewFunctionCallback creates a function-based callback for the given
// lifecycle point.
func NewFunctionCallback(
	callbackType CallbackType,
	fn func(ctx context.Context, cbCtx *CallbackContext) error,
) *FunctionCallback {
	return &FunctionCallback{callbackType: callbackType, fn: fn}
}

// Type returns the callback type this function handles.
func (c *FunctionCallback) Type() CallbackType {
	return c.callbackType
}

// Execute calls the wrapped function.
func (c *FunctionCallback) Execute(ctx context.Context, cbCtx *CallbackContext) error {
	return c.fn(ctx, cbCtx)
}

// CallbackManager routes lifecycle events to registered callbacks.
//
// Registration is not synchronized; register everything during setup.
// Execution afterwards is safe for concurrent use.
type CallbackManager struct {
	callbacks map[CallbackType][]Callback
}

// NewCallbackManager creates an empty manager.
func NewCallbackManager() *CallbackManager {
	return &CallbackManager{callbacks: make(map[CallbackType][]Callback)}
}

// RegisterCallback adds a callback. Callbacks for the same type run in
// registration order.
func (cm *CallbackManager) RegisterCallback(callback Callback) {
	callbackType := callback.Type()
	cm.callbacks[callbackType] = append(cm.callbacks[callbackType], callback)
}

// ExecuteCallbacks runs all callbacks registered for the type in order,
// stopping at the first error.
func (cm *CallbackManager) ExecuteCallbacks(
	ctx context.Context,
	callbackType CallbackType,
	cbCtx *CallbackContext,
) error {
	for _, callback := range cm.callbacks[callbackType] {
		if err := callback.Execute(ctx, cbCtx); err != nil {
			return err
		}
	}
	return nil
}
