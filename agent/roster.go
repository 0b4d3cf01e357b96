package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/core"
)

// rosterEntry is the YAML shape of a single agent definition.
type rosterEntry struct {
	ID           string   `yaml:"id"`
	Role         string   `yaml:"role"`
	Capabilities []string `yaml:"capabilities"`
	Instructions string   `yaml:"system_instructions"`
	Temperature  float64  `yaml:"temperature"`
	MaxTokens    int      `yaml:"max_output_tokens"`
}

type rosterFile struct {
	Agents []rosterEntry `yaml:"agents"`
}

// LoadRoster reads agent specifications from a YAML roster file.
//
// The file holds a top-level `agents` list; each entry needs at least an
// `id` and a `role`:
//
//	agents:
//	  - id: researcher
//	    role: research specialist
//	    capabilities: [search, summarize]
//	    temperature: 0.3
func LoadRoster(path string) ([]core.AgentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes YAML roster bytes into agent specifications. Ids must
// be non-empty and unique within the file.
func ParseRoster(data []byte) ([]core.AgentSpec, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Agents))
	specs := make([]core.AgentSpec, 0, len(file.Agents))
	for i, entry := range file.Agents {
		if entry.ID == "" {
			return nil, fmt.Errorf("roster entry %d: %w", i, ErrEmptyAgentID)
		}
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("roster entry %d: %w: %q", i, ErrDuplicateAgent, entry.ID)
		}
		seen[entry.ID] = struct{}{}
		if entry.Role == "" {
			return nil, fmt.Errorf("roster entry %d (%s): role must not be empty", i, entry.ID)
		}
		specs = append(specs, core.AgentSpec{
			ID:                 entry.ID,
			Role:               entry.Role,
			Capabilities:       entry.Capabilities,
			SystemInstructions: entry.Instructions,
			Params: core.ModelParams{
				Temperature:     entry.Temperature,
				MaxOutputTokens: entry.MaxTokens,
			},
		})
	}
	return specs, nil
}

// RegisterRoster loads a YAML roster file and registers every agent in it.
func RegisterRoster(r *Registry, path string) error {
	specs, err := LoadRoster(path)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}
