package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// InMemoryStore is a process-local MemoryStore backed by a map. Records
// vanish with the process; use the SQLite store when runs must persist.
//
// Concurrency: protected by RWMutex.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]core.MemoryRecord
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]core.MemoryRecord)}
}

// Put stores the record, assigning a fresh id when the record has none and
// stamping CreatedAt when unset. The stored record owns its own tag slice.
func (s *InMemoryStore) Put(_ context.Context, rec core.MemoryRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.Tags = append([]string(nil), rec.Tags...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return rec.ID, nil
}

// Query returns records matching the filter, newest first.
func (s *InMemoryStore) Query(_ context.Context, filter core.MemoryFilter) ([]core.MemoryRecord, error) {
	s.mu.RLock()
	matches := make([]core.MemoryRecord, 0, len(s.records))
	for _, rec := range s.records {
		if !matchesFilter(rec, filter) {
			continue
		}
		rec.Tags = append([]string(nil), rec.Tags...)
		matches = append(matches, rec)
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	if filter.Limit > 0 && len(matches) > filter.Limit {
		matches = matches[:filter.Limit]
	}
	return matches, nil
}

// Search scans all records and ranks them by the fraction of query terms
// found in the record's input or final text (case-insensitive substring
// match). Results are ordered by descending score, ties broken by recency.
// A limit <= 0 defaults to 10.
func (s *InMemoryStore) Search(_ context.Context, query string, limit int) ([]core.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	type scored struct {
		result    core.SearchResult
		createdAt time.Time
	}

	s.mu.RLock()
	var hits []scored
	for _, rec := range s.records {
		score := termFraction(rec, terms)
		if score == 0 {
			continue
		}
		hits = append(hits, scored{result: toSearchResult(rec, score), createdAt: rec.CreatedAt})
	}
	s.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].result.Score != hits[j].result.Score {
			return hits[i].result.Score > hits[j].result.Score
		}
		return hits[i].createdAt.After(hits[j].createdAt)
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]core.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = h.result
	}
	return results, nil
}

// Len reports the number of stored records.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func matchesFilter(rec core.MemoryRecord, filter core.MemoryFilter) bool {
	if len(filter.Tags) > 0 && !hasAnyTag(rec.Tags, filter.Tags) {
		return false
	}
	if !filter.Since.IsZero() && rec.CreatedAt.Before(filter.Since) {
		return false
	}
	if !filter.Until.IsZero() && !rec.CreatedAt.Before(filter.Until) {
		return false
	}
	return true
}

func hasAnyTag(recTags, filterTags []string) bool {
	for _, ft := range filterTags {
		for _, rt := range recTags {
			if rt == ft {
				return true
			}
		}
	}
	return false
}

// termFraction scores a record as matched terms over total terms.
func termFraction(rec core.MemoryRecord, terms []string) float64 {
	haystack := strings.ToLower(rec.Input + "\n" + rec.FinalText)
	matched := 0
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

func toSearchResult(rec core.MemoryRecord, score float64) core.SearchResult {
	return core.SearchResult{
		ID:      rec.ID,
		Content: rec.FinalText,
		Score:   score,
		Metadata: map[string]any{
			"input":   rec.Input,
			"mode":    string(rec.Mode),
			"success": rec.Success,
		},
	}
}
