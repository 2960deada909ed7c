package ecs

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// nameIndex maps human-readable names to entity handles. Names are unique:
// binding a name that is already taken rebinds it to the new entity. Keys
// are 64-bit name hashes; the full name is kept per entry so a hash
// collision reads as "not found" instead of aliasing a foreign entity.
type nameIndex struct {
	byKey map[uint64]nameEntry
	byID  map[EntityID]string
}

type nameEntry struct {
	name string
	ent  Entity
}

func newNameIndex() *nameIndex {
	return &nameIndex{
		byKey: make(map[uint64]nameEntry),
		byID:  make(map[EntityID]string),
	}
}

func nameKey(name string) uint64 {
	return xxhash.Sum64String(name)
}

func (n *nameIndex) set(name string, e Entity) {
	// Drop any previous name held by this entity and any previous owner of
	// the name.
	if old, ok := n.byID[e.ID]; ok {
		delete(n.byKey, nameKey(old))
	}
	key := nameKey(name)
	if prev, ok := n.byKey[key]; ok {
		delete(n.byID, prev.ent.ID)
	}
	n.byKey[key] = nameEntry{name: name, ent: e}
	n.byID[e.ID] = name
}

func (n *nameIndex) find(name string) (Entity, bool) {
	entry, ok := n.byKey[nameKey(name)]
	if !ok || entry.name != name {
		return Entity{}, false
	}
	return entry.ent, true
}

func (n *nameIndex) nameOf(id EntityID) (string, bool) {
	name, ok := n.byID[id]
	return name, ok
}

func (n *nameIndex) clear(name string) bool {
	entry, ok := n.byKey[nameKey(name)]
	if !ok || entry.name != name {
		return false
	}
	delete(n.byKey, nameKey(name))
	delete(n.byID, entry.ent.ID)
	return true
}

func (n *nameIndex) clearEntity(id EntityID) {
	if name, ok := n.byID[id]; ok {
		delete(n.byKey, nameKey(name))
		delete(n.byID, id)
	}
}

// SetName binds a name to a live entity. An existing binding for either the
// name or the entity is replaced.
func (s *Scene) SetName(e Entity, name string) error {
	if !s.entities.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "name %q for %d/%d", name, e.ID, e.Gen)
	}
	s.names.set(name, e)
	return nil
}

// FindEntity resolves a name to its entity. Returns false for unknown names
// and for bindings whose entity has since been destroyed.
func (s *Scene) FindEntity(name string) (Entity, bool) {
	e, ok := s.names.find(name)
	if !ok || !s.entities.Alive(e) {
		return Entity{}, false
	}
	return e, true
}

// EntityName returns the name bound to a live entity, if any.
func (s *Scene) EntityName(e Entity) (string, bool) {
	if !s.entities.Alive(e) {
		return "", false
	}
	return s.names.nameOf(e.ID)
}

// ClearName removes a name binding. Returns whether a binding existed.
func (s *Scene) ClearName(name string) bool {
	return s.names.clear(name)
}
