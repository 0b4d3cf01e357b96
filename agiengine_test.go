package agiengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

func TestNew_DefaultsAndStrategyExecution(t *testing.T) {
	mock := model.NewMockModel("facade")
	mock.QueueResponse("1. Consider the question.\n2. Conclude.\nAnswer: done")

	eng := New(mock)
	result, err := eng.ExecuteStrategy(context.Background(), "a question", core.ModeDirect)
	require.NoError(t, err)

	assert.Equal(t, core.ModeDirect, result.Mode)
	assert.Equal(t, "done", result.FinalText)
	assert.Equal(t, int64(1), eng.Stats().SampleCount)

	recs, err := eng.Memory().Query(context.Background(), core.MemoryFilter{})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestNew_CollaborationThroughFacade(t *testing.T) {
	mock := model.NewMockModel("facade")
	mock.AddResponse("You are planner", "the plan")
	mock.AddResponse("You are builder", "the build")

	eng := New(mock, func(o *Options) {
		o.MemoryStore = nil
	})
	require.NoError(t, eng.RegisterAgent(core.AgentSpec{ID: "planner", Role: "planning lead"}))
	require.NoError(t, eng.RegisterAgent(core.AgentSpec{ID: "builder", Role: "implementer"}))
	assert.Equal(t, 2, eng.Registry().Len())

	result, err := eng.Collaborate(context.Background(), "ship it", core.TopologySequential, "planner", "builder")
	require.NoError(t, err)

	assert.Equal(t, core.TopologySequential, result.Topology)
	assert.Equal(t, "the build", result.FinalText)
	assert.Nil(t, eng.Memory())
}
