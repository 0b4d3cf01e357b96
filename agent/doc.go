// Package agent maintains the roster of collaborating agents. The registry
// is pure configuration data: registering an agent performs no generator
// calls and allocates no per-agent resources. Rosters can be assembled in
// code or loaded from YAML files.
package agent
