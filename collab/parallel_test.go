package collab

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/agent"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/internal/testutil"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

func panelAgents() []core.AgentSpec {
	return []core.AgentSpec{
		testutil.NewSpec("alpha").Role("optimist").Build(),
		testutil.NewSpec("beta").Role("skeptic").Build(),
		testutil.NewSpec("gamma").Role("pragmatist").Build(),
	}
}

func TestParallel_FanOutAndSynthesis(t *testing.T) {
	mock := model.NewMockModel("par")
	mock.AddResponse("merge independent results", "the synthesized answer")
	mock.AddResponse("You are alpha", "alpha result")
	mock.AddResponse("You are beta", "beta result")
	mock.AddResponse("You are gamma", "gamma result")

	topo, err := New(core.TopologyParallel, mock)
	require.NoError(t, err)

	result, err := topo.Run(context.Background(), "Evaluate the proposal", panelAgents())
	require.NoError(t, err)

	assert.Equal(t, core.ModeCollaboration, result.Mode)
	assert.Equal(t, core.TopologyParallel, result.Topology)
	require.Len(t, result.Steps, 3)

	// Steps are numbered by input order, not completion order.
	for i, id := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, i+1, result.Steps[i].StepNumber)
		assert.Equal(t, id, result.Steps[i].Actor)
		assert.Equal(t, "Evaluate the proposal", result.Steps[i].Input)
		assert.True(t, result.Steps[i].Success)
	}

	assert.Equal(t, "the synthesized answer", result.FinalText)
	assert.True(t, result.Success)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.Equal(t, 4, mock.CallCount())

	// The synthesis request carries every branch output.
	reqs := mock.Requests()
	synth := reqs[len(reqs)-1]
	assert.Contains(t, synth.Prompt, "alpha result")
	assert.Contains(t, synth.Prompt, "beta result")
	assert.Contains(t, synth.Prompt, "gamma result")
}

func TestParallel_BranchFailureDoesNotAbortSiblings(t *testing.T) {
	mock := model.NewMockModel("par")
	mock.AddResponse("merge independent results", "merged answer")
	mock.AddResponse("You are alpha", "alpha result")
	mock.FailWith("You are beta", errors.New("request timed out"))
	mock.AddResponse("You are gamma", "gamma result")

	topo, err := New(core.TopologyParallel, mock)
	require.NoError(t, err)

	result, err := topo.Run(context.Background(), "Evaluate the proposal", panelAgents())
	require.NoError(t, err)

	require.Len(t, result.Steps, 3)
	assert.True(t, result.Steps[0].Success)
	assert.False(t, result.Steps[1].Success)
	assert.Equal(t, model.KindTimeout, result.Steps[1].ErrorCode)
	assert.True(t, result.Steps[2].Success)

	assert.False(t, result.Success)
	assert.Equal(t, "merged answer", result.FinalText)
	assert.InDelta(t, 2.0/3.0, result.Confidence, 1e-9)

	// Synthesis merges only the successful branches.
	reqs := mock.Requests()
	synth := reqs[len(reqs)-1]
	assert.Contains(t, synth.Prompt, "[alpha]")
	assert.Contains(t, synth.Prompt, "[gamma]")
	assert.NotContains(t, synth.Prompt, "[beta]")
}

func TestParallel_AllBranchesFailed(t *testing.T) {
	mock := model.NewMockModel("par")
	mock.FailWith("You are alpha", errors.New("connection refused"))
	mock.FailWith("You are beta", errors.New("connection refused"))

	topo, err := New(core.TopologyParallel, mock)
	require.NoError(t, err)

	agents := panelAgents()[:2]
	result, err := topo.Run(context.Background(), "Evaluate the proposal", agents)
	require.NoError(t, err)

	require.Len(t, result.Steps, 2)
	assert.False(t, result.Success)
	assert.Equal(t, NoUsableResult, result.FinalText)
	assert.Zero(t, result.Confidence)

	// No synthesis call happened.
	assert.Equal(t, 2, mock.CallCount())
}

func TestParallel_SynthesisFailurePropagates(t *testing.T) {
	mock := model.NewMockModel("par")
	mock.AddResponse("You are alpha", "alpha result")
	mock.FailWith("merge independent results", errors.New("503 service unavailable"))

	topo, err := New(core.TopologyParallel, mock)
	require.NoError(t, err)

	result, err := topo.Run(context.Background(), "Evaluate the proposal", panelAgents()[:1])
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrTransport)
}

func TestParallel_BranchInstructionsMentionIndependence(t *testing.T) {
	mock := model.NewMockModel("par")
	mock.AddResponse("merge independent results", "merged answer")

	topo, err := New(core.TopologyParallel, mock)
	require.NoError(t, err)

	_, err = topo.Run(context.Background(), "task", panelAgents()[:2])
	require.NoError(t, err)

	reqs := mock.Requests()
	require.Len(t, reqs, 3)
	assert.Contains(t, reqs[0].Instructions, "in parallel")
	assert.Contains(t, reqs[1].Instructions, "in parallel")
}

func TestParallel_EmptyAgentSet(t *testing.T) {
	mock := model.NewMockModel("par")
	topo, err := New(core.TopologyParallel, mock)
	require.NoError(t, err)

	_, err = topo.Run(context.Background(), "task", nil)
	assert.ErrorIs(t, err, agent.ErrEmptyAgentSet)
	assert.Zero(t, mock.CallCount())
}
