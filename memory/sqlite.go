package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// SQLiteStore is a MemoryStore persisted to a single SQLite database. It
// mirrors the in-memory store's semantics: Query filters by tag, time
// window and limit (newest first), and Search ranks by matched-term
// fraction with a LIKE prefilter pushed into SQL.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS executions (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		topology TEXT NOT NULL DEFAULT '',
		input TEXT NOT NULL,
		final_text TEXT NOT NULL DEFAULT '',
		confidence REAL NOT NULL DEFAULT 0,
		success INTEGER NOT NULL,
		steps INTEGER NOT NULL DEFAULT 0,
		tokens_used INTEGER NOT NULL DEFAULT 0,
		duration_ns INTEGER NOT NULL DEFAULT 0,
		tags TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_executions_created ON executions(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Put stores the record, assigning a fresh id when the record has none and
// stamping CreatedAt when unset. An existing record with the same id is
// replaced.
func (s *SQLiteStore) Put(ctx context.Context, rec core.MemoryRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	var tagsJSON string
	if len(rec.Tags) > 0 {
		data, err := json.Marshal(rec.Tags)
		if err != nil {
			return "", fmt.Errorf("marshal tags: %w", err)
		}
		tagsJSON = string(data)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO executions
			(id, mode, topology, input, final_text, confidence, success, steps, tokens_used, duration_ns, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, string(rec.Mode), string(rec.Topology), rec.Input, rec.FinalText,
		rec.Confidence, rec.Success, rec.Steps, rec.TokensUsed, rec.Duration.Nanoseconds(),
		tagsJSON, rec.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert execution record: %w", err)
	}
	return rec.ID, nil
}

// Query returns records matching the filter, newest first. The time window
// is pushed into SQL; tag matching and the limit are applied while
// scanning.
func (s *SQLiteStore) Query(ctx context.Context, filter core.MemoryFilter) ([]core.MemoryRecord, error) {
	query := selectColumns + " FROM executions"
	var conds []string
	var args []any
	if !filter.Since.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, filter.Since)
	}
	if !filter.Until.IsZero() {
		conds = append(conds, "created_at < ?")
		args = append(args, filter.Until)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query executions: %w", err)
	}
	defer rows.Close()

	var matches []core.MemoryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		if len(filter.Tags) > 0 && !hasAnyTag(rec.Tags, filter.Tags) {
			continue
		}
		matches = append(matches, rec)
		if filter.Limit > 0 && len(matches) == filter.Limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan executions: %w", err)
	}
	return matches, nil
}

// Search prefilters candidate rows with LIKE on input and final text, then
// scores them exactly like the in-memory store. A limit <= 0 defaults
// to 10.
func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]core.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)*2)
	for _, term := range terms {
		pattern := "%" + term + "%"
		conds = append(conds, "(lower(input) LIKE ? OR lower(final_text) LIKE ?)")
		args = append(args, pattern, pattern)
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+" FROM executions WHERE "+strings.Join(conds, " OR "), args...)
	if err != nil {
		return nil, fmt.Errorf("search executions: %w", err)
	}
	defer rows.Close()

	type scored struct {
		result    core.SearchResult
		createdAt time.Time
	}
	var hits []scored
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		score := termFraction(rec, terms)
		if score == 0 {
			continue
		}
		hits = append(hits, scored{result: toSearchResult(rec, score), createdAt: rec.CreatedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan executions: %w", err)
	}

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

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const selectColumns = "SELECT id, mode, topology, input, final_text, confidence, success, steps, tokens_used, duration_ns, tags, created_at"

func scanRecord(rows *sql.Rows) (core.MemoryRecord, error) {
	var rec core.MemoryRecord
	var mode, topology string
	var durationNS int64
	var tagsJSON sql.NullString

	err := rows.Scan(&rec.ID, &mode, &topology, &rec.Input, &rec.FinalText,
		&rec.Confidence, &rec.Success, &rec.Steps, &rec.TokensUsed, &durationNS,
		&tagsJSON, &rec.CreatedAt)
	if err != nil {
		return core.MemoryRecord{}, fmt.Errorf("scan execution record: %w", err)
	}

	rec.Mode = core.Mode(mode)
	rec.Topology = core.Topology(topology)
	rec.Duration = time.Duration(durationNS)
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &rec.Tags); err != nil {
			return core.MemoryRecord{}, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return rec, nil
}
