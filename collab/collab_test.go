package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

func TestNew_AllTopologies(t *testing.T) {
	mock := model.NewMockModel("collab")

	for _, kind := range []core.Topology{
		core.TopologySequential,
		core.TopologyParallel,
		core.TopologyHierarchical,
	} {
		topo, err := New(kind, mock)
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, kind, topo.Kind())
	}
}

func TestNew_UnknownTopology(t *testing.T) {
	mock := model.NewMockModel("collab")
	_, err := New("ring", mock)
	assert.ErrorIs(t, err, ErrUnknownTopology)
}

func TestFraming_IncludesRoleAndCapabilities(t *testing.T) {
	spec := core.AgentSpec{
		ID:                 "researcher",
		Role:               "research specialist",
		Capabilities:       []string{"search", "summarize"},
		SystemInstructions: "Cite your sources.",
	}

	instructions, err := framing(spec, "You work alone.")
	require.NoError(t, err)
	assert.Contains(t, instructions, "You are researcher, acting as research specialist.")
	assert.Contains(t, instructions, "Your capabilities: search, summarize.")
	assert.Contains(t, instructions, "You work alone.")
	assert.Contains(t, instructions, "Cite your sources.")
}

func TestFraming_OmitsEmptyCapabilities(t *testing.T) {
	instructions, err := framing(core.AgentSpec{ID: "w", Role: "writer"}, "pos")
	require.NoError(t, err)
	assert.NotContains(t, instructions, "capabilities")
}
