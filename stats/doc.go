// Package stats aggregates usage statistics across engine executions.
// Means are maintained incrementally so the aggregator needs constant
// memory regardless of request volume.
package stats
