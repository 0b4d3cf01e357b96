package model

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"rate limit message", errors.New("429 too many requests"), ErrRateLimited},
		{"quota message", errors.New("quota exceeded for project"), ErrRateLimited},
		{"timeout message", errors.New("request timed out"), ErrTimeout},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
		{"canceled", context.Canceled, ErrTimeout},
		{"malformed body", errors.New("unexpected end of JSON input"), ErrInvalidResponse},
		{"no choices", errors.New("no choices returned"), ErrInvalidResponse},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrTransport},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err)
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestClassify_NilAndPassthrough(t *testing.T) {
	assert.NoError(t, Classify(nil))

	wrapped := fmt.Errorf("call failed: %w", ErrRateLimited)
	assert.Equal(t, wrapped, Classify(wrapped))
}

func TestClassify_PreservesOriginalError(t *testing.T) {
	orig := errors.New("rate limit reached for gpt-4o")
	got := Classify(orig)
	assert.ErrorIs(t, got, ErrRateLimited)
	assert.ErrorIs(t, got, orig)
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("api error")
	assert.ErrorIs(t, ClassifyStatus(429, base), ErrRateLimited)
	assert.ErrorIs(t, ClassifyStatus(408, base), ErrTimeout)
	assert.ErrorIs(t, ClassifyStatus(504, base), ErrTimeout)
	assert.ErrorIs(t, ClassifyStatus(500, base), ErrTransport)
	assert.ErrorIs(t, ClassifyStatus(503, base), ErrTransport)
	assert.ErrorIs(t, ClassifyStatus(400, base), ErrInvalidResponse)
	assert.ErrorIs(t, ClassifyStatus(404, base), ErrInvalidResponse)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "", KindOf(nil))
	assert.Equal(t, KindTimeout, KindOf(fmt.Errorf("x: %w", ErrTimeout)))
	assert.Equal(t, KindRateLimited, KindOf(fmt.Errorf("x: %w", ErrRateLimited)))
	assert.Equal(t, KindInvalidResponse, KindOf(fmt.Errorf("x: %w", ErrInvalidResponse)))
	assert.Equal(t, KindTransport, KindOf(fmt.Errorf("x: %w", ErrTransport)))
	assert.Equal(t, KindTransport, KindOf(errors.New("unclassified")))
}

func TestGenerate_AppliesTimeout(t *testing.T) {
	mock := NewMockModel("slow")
	mock.SetLatency(200 * time.Millisecond)

	_, err := Generate(context.Background(), mock, Request{Prompt: "hello"}, 10*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerate_StampsLatency(t *testing.T) {
	mock := NewMockModel("fast")
	resp, err := Generate(context.Background(), mock, Request{Prompt: "hello"}, time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, resp.Latency, time.Duration(0))
	assert.NotEmpty(t, resp.Text)
}

func TestGenerate_ClassifiesModelError(t *testing.T) {
	mock := NewMockModel("flaky")
	mock.FailWith("hello", errors.New("rate limit reached"))

	_, err := Generate(context.Background(), mock, Request{Prompt: "hello"}, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerate_NilResponse(t *testing.T) {
	_, err := Generate(context.Background(), nilModel{}, Request{Prompt: "x"}, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

type nilModel struct{}

func (nilModel) Generate(context.Context, Request) (*Response, error) { return nil, nil }
func (nilModel) Info() Info                                           { return Info{Name: "nil", Provider: "test"} }

func TestMockModel_SubstringRules(t *testing.T) {
	mock := NewMockModel("scripted")
	mock.AddResponse("weather", "It is sunny.")
	mock.AddResponse("sun", "first match wins over this")

	resp, err := mock.Generate(context.Background(), Request{Prompt: "What is the weather like?"})
	require.NoError(t, err)
	assert.Equal(t, "It is sunny.", resp.Text)
}

func TestMockModel_MatchesInstructions(t *testing.T) {
	mock := NewMockModel("scripted")
	mock.AddResponse("researcher", "research findings")

	resp, err := mock.Generate(context.Background(), Request{
		Instructions: "You are a researcher.",
		Prompt:       "Investigate the topic.",
	})
	require.NoError(t, err)
	assert.Equal(t, "research findings", resp.Text)
}

func TestMockModel_QueueOrder(t *testing.T) {
	mock := NewMockModel("queued")
	mock.QueueResponse("first")
	mock.QueueResponse("second")

	resp, err := mock.Generate(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)

	resp, err = mock.Generate(context.Background(), Request{Prompt: "b"})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text)

	// Queue exhausted, falls back to the default echo.
	resp, err = mock.Generate(context.Background(), Request{Prompt: "c"})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Mock response to: c")
}

func TestMockModel_RecordsRequests(t *testing.T) {
	mock := NewMockModel("recorder")
	_, err := mock.Generate(context.Background(), Request{Prompt: "one"})
	require.NoError(t, err)
	_, err = mock.Generate(context.Background(), Request{Prompt: "two", Temperature: 0.3})
	require.NoError(t, err)

	reqs := mock.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "one", reqs[0].Prompt)
	assert.Equal(t, "two", reqs[1].Prompt)
	assert.InDelta(t, 0.3, reqs[1].Temperature, 1e-9)
	assert.Equal(t, 2, mock.CallCount())
}

func TestMockModel_UsageEstimate(t *testing.T) {
	mock := NewMockModel("usage")
	mock.AddResponse("ping", "pong pong pong!")

	resp, err := mock.Generate(context.Background(), Request{Prompt: "ping"})
	require.NoError(t, err)
	assert.Positive(t, resp.Usage.PromptTokens)
	assert.Positive(t, resp.Usage.CompletionTokens)
	assert.Equal(t, resp.Usage.PromptTokens+resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
}

func TestMockModel_Info(t *testing.T) {
	mock := NewMockModel("my-mock")
	info := mock.Info()
	assert.Equal(t, "my-mock", info.Name)
	assert.Equal(t, "mock", info.Provider)
}
