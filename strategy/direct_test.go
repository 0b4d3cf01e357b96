package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

func TestDirect_ParsesNumberedThoughts(t *testing.T) {
	mock := model.NewMockModel("direct")
	mock.QueueResponse("1. The square has side 4.\n2. Area is side squared.\n3. That gives 16.\nAnswer: 16")

	s, err := New(core.ModeDirect, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "What is the area of a square with side 4?")
	require.NoError(t, err)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, "thought-1", result.Steps[0].Actor)
	assert.Equal(t, "thought-3", result.Steps[2].Actor)
	assert.Equal(t, 1, result.Steps[0].StepNumber)
	assert.Equal(t, 3, result.Steps[2].StepNumber)
	assert.Equal(t, "The square has side 4.", result.Steps[0].Output)
	assert.Equal(t, "16", result.FinalText)
	assert.True(t, result.Success)
	assert.Equal(t, core.ModeDirect, result.Mode)
	assert.Empty(t, result.Topology)
	assert.Equal(t, 1, mock.CallCount())
}

func TestDirect_UnnumberedReplyYieldsOneStep(t *testing.T) {
	mock := model.NewMockModel("direct")
	mock.QueueResponse("The answer emerges without any list structure at all.")

	s, err := New(core.ModeDirect, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "anything")
	require.NoError(t, err)

	require.Len(t, result.Steps, 1)
	assert.Equal(t, "The answer emerges without any list structure at all.", result.Steps[0].Output)
	assert.InDelta(t, 0.85, result.Confidence, 1e-9)
}

func TestDirect_ConfidenceScalesWithSteps(t *testing.T) {
	mock := model.NewMockModel("direct")
	mock.QueueResponse("1. a\n2. b\n3. c\nAnswer: done")

	s, err := New(core.ModeDirect, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "task")
	require.NoError(t, err)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
}

func TestDirect_TokensOnFirstStepOnly(t *testing.T) {
	mock := model.NewMockModel("direct")
	mock.QueueResponse("1. alpha\n2. beta\nAnswer: gamma")

	s, err := New(core.ModeDirect, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "task")
	require.NoError(t, err)

	require.Len(t, result.Steps, 2)
	assert.Positive(t, result.Steps[0].TokensUsed)
	assert.Zero(t, result.Steps[1].TokensUsed)
	assert.Equal(t, result.Steps[0].TokensUsed, result.TokensUsed())
}

func TestDirect_GeneratorFailureAborts(t *testing.T) {
	mock := model.NewMockModel("direct")
	mock.FailWith("doomed", errors.New("rate limit reached"))

	s, err := New(core.ModeDirect, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "doomed task")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrRateLimited)
}
