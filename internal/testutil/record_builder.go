package testutil

import (
	"time"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// RecordBuilder provides a fluent helper for constructing memory records in
// tests. Example:
//
//	rec := testutil.NewRecord("what is 2+2").Final("4").
//		Tags("math").CreatedAt(base.Add(time.Minute)).Build()
//
// Records default to a successful direct execution with one step.
type RecordBuilder struct {
	rec core.MemoryRecord
}

// NewRecord creates a builder for a record with the given input.
func NewRecord(input string) *RecordBuilder {
	return &RecordBuilder{rec: core.MemoryRecord{
		Mode:    core.ModeDirect,
		Input:   input,
		Success: true,
		Steps:   1,
	}}
}

// ID sets an explicit record id (chainable).
func (b *RecordBuilder) ID(id string) *RecordBuilder {
	b.rec.ID = id
	return b
}

// Mode sets the execution mode (chainable).
func (b *RecordBuilder) Mode(mode core.Mode) *RecordBuilder {
	b.rec.Mode = mode
	return b
}

// Topology sets the collaboration topology (chainable).
func (b *RecordBuilder) Topology(topology core.Topology) *RecordBuilder {
	b.rec.Topology = topology
	return b
}

// Final sets the final text (chainable).
func (b *RecordBuilder) Final(text string) *RecordBuilder {
	b.rec.FinalText = text
	return b
}

// Failed marks the record unsuccessful (chainable).
func (b *RecordBuilder) Failed() *RecordBuilder {
	b.rec.Success = false
	return b
}

// Tags sets the record's tags (chainable).
func (b *RecordBuilder) Tags(tags ...string) *RecordBuilder {
	b.rec.Tags = tags
	return b
}

// CreatedAt sets an explicit creation time (chainable).
func (b *RecordBuilder) CreatedAt(t time.Time) *RecordBuilder {
	b.rec.CreatedAt = t
	return b
}

// Build constructs the core.MemoryRecord value.
func (b *RecordBuilder) Build() core.MemoryRecord {
	return b.rec
}
