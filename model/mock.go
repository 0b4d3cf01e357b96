package model

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type mockRule struct {
	substr string
	text   string
	err    error
}

// MockModel implements Model for testing. Responses are scripted either by
// prompt substring (AddResponse, FailWith) or as an ordered queue consumed
// when no rule matches (QueueResponse). Every received request is recorded.
type MockModel struct {
	mu       sync.Mutex
	name     string
	rules    []mockRule
	queue    []string
	latency  time.Duration
	requests []Request
}

// NewMockModel creates a mock with the given name.
func NewMockModel(name string) *MockModel {
	return &MockModel{name: name}
}

// AddResponse scripts a reply for any request whose instructions or prompt
// contain substr. Rules are matched in the order they were added.
func (m *MockModel) AddResponse(substr, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, mockRule{substr: substr, text: text})
}

// FailWith scripts an error for any request whose instructions or prompt
// contain substr.
func (m *MockModel) FailWith(substr string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, mockRule{substr: substr, err: err})
}

// QueueResponse appends a reply to the ordered fallback queue. Queued
// replies are consumed one per call when no substring rule matches.
func (m *MockModel) QueueResponse(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, text)
}

// SetLatency makes every call take d before replying. Calls respect
// context cancellation while waiting.
func (m *MockModel) SetLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latency = d
}

// Requests returns a copy of every request received so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// CallCount returns the number of Generate calls received so far.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Generate replies according to the scripted rules and queue.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	latency := m.latency
	text, err, scripted := m.lookup(req)
	m.mu.Unlock()

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return nil, Classify(ctx.Err())
		}
	}
	if err != nil {
		return nil, Classify(err)
	}
	if !scripted {
		text = fmt.Sprintf("Mock response to: %s", req.Prompt)
	}
	return &Response{
		Text:         text,
		Usage:        estimateUsage(req, text),
		Latency:      latency,
		FinishReason: "stop",
	}, nil
}

// Info returns the mock's metadata.
func (m *MockModel) Info() Info {
	return Info{Name: m.name, Provider: "mock"}
}

// lookup must be called with the mutex held.
func (m *MockModel) lookup(req Request) (string, error, bool) {
	haystack := req.Instructions + "\n" + req.Prompt
	for _, r := range m.rules {
		if strings.Contains(haystack, r.substr) {
			return r.text, r.err, true
		}
	}
	if len(m.queue) > 0 {
		text := m.queue[0]
		m.queue = m.queue[1:]
		return text, nil, true
	}
	return "", nil, false
}

func estimateUsage(req Request, text string) TokenUsage {
	prompt := approxTokens(req.Instructions) + approxTokens(req.Prompt)
	completion := approxTokens(text)
	return TokenUsage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
}

// approxTokens estimates token usage at four characters per token, with a
// floor of one token for non-empty text.
func approxTokens(s string) int {
	if s == "" {
		return 0
	}
	n := len(s) / 4
	if n == 0 {
		n = 1
	}
	return n
}
