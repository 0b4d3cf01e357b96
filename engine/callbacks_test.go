package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Callback = (*FunctionCallback)(nil)

func TestCallbackManager_RunsInRegistrationOrder(t *testing.T) {
	cm := NewCallbackManager()

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		cm.RegisterCallback(NewFunctionCallback(CallbackBeforeExecute,
			func(_ context.Context, _ *CallbackContext) error {
				order = append(order, name)
				return nil
			}))
	}

	err := cm.ExecuteCallbacks(context.Background(), CallbackBeforeExecute, &CallbackContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestCallbackManager_StopsAtFirstError(t *testing.T) {
	cm := NewCallbackManager()
	boom := errors.New("boom")

	var ran []string
	cm.RegisterCallback(NewFunctionCallback(CallbackBeforeExecute,
		func(_ context.Context, _ *CallbackContext) error {
			ran = append(ran, "first")
			return boom
		}))
	cm.RegisterCallback(NewFunctionCallback(CallbackBeforeExecute,
		func(_ context.Context, _ *CallbackContext) error {
			ran = append(ran, "second")
			return nil
		}))

	err := cm.ExecuteCallbacks(context.Background(), CallbackBeforeExecute, &CallbackContext{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first"}, ran)
}

func TestCallbackManager_TypesAreIndependent(t *testing.T) {
	cm := NewCallbackManager()

	var ran []CallbackType
	for _, ct := range []CallbackType{CallbackBeforeExecute, CallbackAfterExecute, CallbackOnError} {
		ct := ct
		cm.RegisterCallback(NewFunctionCallback(ct,
			func(_ context.Context, _ *CallbackContext) error {
				ran = append(ran, ct)
				return nil
			}))
	}

	err := cm.ExecuteCallbacks(context.Background(), CallbackAfterExecute, &CallbackContext{})
	require.NoError(t, err)
	assert.Equal(t, []CallbackType{CallbackAfterExecute}, ran)
}

func TestCallbackManager_NoCallbacksIsNoOp(t *testing.T) {
	cm := NewCallbackManager()
	err := cm.ExecuteCallbacks(context.Background(), CallbackOnError, &CallbackContext{})
	assert.NoError(t, err)
}

func TestFunctionCallback_Type(t *testing.T) {
	cb := NewFunctionCallback(CallbackOnError, func(_ context.Context, _ *CallbackContext) error {
		return nil
	})
	assert.Equal(t, CallbackOnError, cb.Type())
}
