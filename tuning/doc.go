// Package tuning provides the fine-tuning job intake. The manager
// validates and queues job specs and issues job ids; nothing is ever
// trained in-process. Queued jobs are handed off to whatever external
// pipeline the operator wires up, so the only transitions the manager
// itself performs are queued to canceled.
package tuning
