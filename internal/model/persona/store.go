package persona

import (
	"errors"
	"fmt"
)

// ErrUnknownPersona is returned when a requested persona is not registered.
var ErrUnknownPersona = errors.New("unknown persona")

// Registry exposes persona retrieval for services and HTTP handlers.
type Registry interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
	Lookup(id string) (Persona, error)
}

// MemoryStore implements Registry with an immutable in-memory slice.
type MemoryStore struct {
	items []Persona
	index map[string]int
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas.
// Later duplicates of an id are ignored.
func NewMemoryStore(items []Persona) *MemoryStore {
	store := &MemoryStore{
		items: make([]Persona, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, exists := store.index[item.ID]; exists {
			continue
		}
		store.index[item.ID] = len(store.items)
		store.items = append(store.items, item)
	}
	return store
}

// List returns the registered personas in registration order.
func (s *MemoryStore) List() []Persona {
	return append([]Persona(nil), s.items...)
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	idx, ok := s.index[id]
	if !ok {
		return Persona{}, false
	}
	return s.items[idx], true
}

// Lookup is FindByID with an ErrUnknownPersona failure.
func (s *MemoryStore) Lookup(id string) (Persona, error) {
	p, ok := s.FindByID(id)
	if !ok {
		return Persona{}, fmt.Errorf("%w: %q", ErrUnknownPersona, id)
	}
	return p, nil
}

// IDs returns the identifiers in registration order.
func (s *MemoryStore) IDs() []string {
	ids := make([]string, len(s.items))
	for i, item := range s.items {
		ids[i] = item.ID
	}
	return ids
}
