package core

import (
	"context"
	"time"
)

// MemoryRecord is one persisted episodic record: the engine writes exactly
// one per completed top-level request.
type MemoryRecord struct {
	ID         string        `json:"id"`
	Mode       Mode          `json:"mode"`
	Topology   Topology      `json:"topology,omitempty"`
	Input      string        `json:"input"`
	FinalText  string        `json:"final_text"`
	Confidence float64       `json:"confidence"`
	Success    bool          `json:"success"`
	Steps      int           `json:"steps"`
	TokensUsed int           `json:"tokens_used"`
	Duration   time.Duration `json:"duration"`
	Tags       []string      `json:"tags,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// MemoryFilter narrows a Query. Zero values are ignored: an empty tag list
// matches everything, zero times leave the window open, and Limit <= 0
// returns all matches.
type MemoryFilter struct {
	// Tags match records carrying at least one of the given tags.
	Tags []string

	// Since / Until bound CreatedAt (inclusive since, exclusive until).
	Since time.Time
	Until time.Time

	// Limit caps the number of returned records.
	Limit int
}

// SearchResult is a retrieved passage with a relevance score and arbitrary
// metadata, ordered best-first.
type SearchResult struct {
	ID       string
	Content  string
	Score    float64
	Metadata map[string]any
}

// MemoryStore persists execution records and serves ranked keyword
// retrieval over them. The engine treats the store as best-effort: a Put
// failure is logged and skipped, never propagated, and no engine control
// flow depends on reads.
type MemoryStore interface {
	// Put stores the record, assigning an id if the record has none, and
	// returns the id.
	Put(ctx context.Context, rec MemoryRecord) (string, error)

	// Query returns records matching the filter, newest first.
	Query(ctx context.Context, filter MemoryFilter) ([]MemoryRecord, error)

	// Search runs a flat keyword scan over stored records and returns up
	// to limit passages ranked by relevance.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
