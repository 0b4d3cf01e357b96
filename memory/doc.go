// Package memory contains concrete MemoryStore implementations. The store
// interface and record types live in the core package; depend on
// core.MemoryStore in your code and pick a backend at wiring time.
//
// Two backends ship with the engine: a process-local map store for tests
// and demos, and a SQLite store for persistence across runs. Both rank
// keyword search by matched-term fraction; neither does vector math.
package memory
