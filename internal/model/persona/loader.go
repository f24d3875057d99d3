package persona

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zhouzirui/cm-assistant/backend/internal/analysis/sections"
)

type registryFile struct {
	Personas []Persona `toml:"persona"`
}

// LoadFile reads a TOML persona registry made of [[persona]] tables.
func LoadFile(path string) (*MemoryStore, error) {
	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decoding persona file %s: %w", path, err)
	}
	return build(file.Personas)
}

// Parse is LoadFile for in-memory TOML content.
func Parse(data string) (*MemoryStore, error) {
	var file registryFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("decoding persona registry: %w", err)
	}
	return build(file.Personas)
}

func build(items []Persona) (*MemoryStore, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("persona registry is empty")
	}

	seen := make(map[string]string, len(items))
	for i := range items {
		items[i].ID = strings.TrimSpace(items[i].ID)
		items[i].Instruction = strings.TrimSpace(items[i].Instruction)

		id := items[i].ID
		if id == "" {
			return nil, fmt.Errorf("persona #%d has no id", i+1)
		}
		if items[i].Instruction == "" {
			return nil, fmt.Errorf("persona %q has no instruction", id)
		}
		if err := sections.CheckLabel(id); err != nil {
			return nil, fmt.Errorf("persona id: %w", err)
		}
		key := sections.LabelKey(id)
		if other, dup := seen[key]; dup {
			if other == id {
				return nil, fmt.Errorf("duplicate persona id %q", id)
			}
			return nil, fmt.Errorf("persona ids %q and %q are indistinguishable in combined replies", other, id)
		}
		seen[key] = id
	}
	return NewMemoryStore(items), nil
}
