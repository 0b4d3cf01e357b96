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

func TestIterative_StopsOnAnswer(t *testing.T) {
	mock := model.NewMockModel("iterative")
	// thought, action, thought, action: second action answers.
	mock.QueueResponse("I need the population figure first.")
	mock.QueueResponse("SEARCH: population of Peru")
	mock.QueueResponse("With the figure found, I can answer.")
	mock.QueueResponse("ANSWER: about 34 million people")

	s, err := New(core.ModeIterative, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "How many people live in Peru?")
	require.NoError(t, err)

	require.Len(t, result.Steps, 2)
	assert.Equal(t, "iteration-1", result.Steps[0].Actor)
	assert.Equal(t, "iteration-2", result.Steps[1].Actor)
	assert.Contains(t, result.Steps[0].Input, "Thought: I need the population figure first.")
	assert.Contains(t, result.Steps[0].Input, "Action: SEARCH: population of Peru")
	assert.Contains(t, result.Steps[0].Output, "Simulated search results")
	assert.Equal(t, "about 34 million people", result.FinalText)
	assert.Equal(t, result.Steps[1].Output, result.FinalText)
	assert.True(t, result.Success)
	assert.Equal(t, 4, mock.CallCount())
}

func TestIterative_HonorsIterationCap(t *testing.T) {
	mock := model.NewMockModel("iterative")
	// Never answers: every action is a search.
	mock.AddResponse("Decide the next action", "SEARCH: one more clue")
	mock.AddResponse("next thought", "Still digging.")

	s, err := New(core.ModeIterative, mock, func(o *Options) {
		o.MaxIterations = 3
	})
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "an unanswerable question")
	require.NoError(t, err)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, 6, mock.CallCount())
	assert.Contains(t, result.FinalText, "Simulated search results")
}

func TestIterative_ObservationsAccumulateInPrompts(t *testing.T) {
	mock := model.NewMockModel("iterative")
	mock.QueueResponse("first thought")
	mock.QueueResponse("SEARCH: alpha")
	mock.QueueResponse("second thought")
	mock.QueueResponse("ANSWER: done")

	s, err := New(core.ModeIterative, mock)
	require.NoError(t, err)

	_, err = s.Run(context.Background(), "task")
	require.NoError(t, err)

	reqs := mock.Requests()
	require.Len(t, reqs, 4)
	// The second thought prompt carries the first observation.
	assert.Contains(t, reqs[2].Prompt, "Observation 1:")
	assert.Contains(t, reqs[2].Prompt, "Simulated search results")
}

func TestIterative_GeneratorFailureAborts(t *testing.T) {
	mock := model.NewMockModel("iterative")
	mock.QueueResponse("a thought")
	mock.FailWith("Decide the next action", errors.New("connection refused"))

	s, err := New(core.ModeIterative, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "task")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrTransport)
}

func TestIterative_StepTokensCoverBothCalls(t *testing.T) {
	mock := model.NewMockModel("iterative")
	mock.QueueResponse("one thought")
	mock.QueueResponse("ANSWER: immediate")

	s, err := New(core.ModeIterative, mock)
	require.NoError(t, err)

	result, err := s.Run(context.Background(), "task")
	require.NoError(t, err)

	require.Len(t, result.Steps, 1)
	reqs := mock.Requests()
	require.Len(t, reqs, 2)
	assert.Positive(t, result.Steps[0].TokensUsed)
}
