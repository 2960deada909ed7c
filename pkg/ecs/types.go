// Package ecs implements a sparse-set based Entity Component System core.
//
// Entities are plain (ID, Generation) handles with no data of their own.
// Component values live in dense, per-type pools and membership is tracked
// through a 64-bit capability mask per entity, which makes multi-component
// queries a single mask comparison per live entity. Systems are priority
// ordered units of per-frame logic driven by a Scene, the single owner of
// all registries.
//
// The core is single-threaded by design: no operation may be re-entered
// concurrently from multiple goroutines without external synchronization.
package ecs

// EntityID is a dense, recycled integer identifier. It is only meaningful
// together with a Generation; use Entity as the handle type everywhere.
type EntityID uint32

// Generation counts how many times an EntityID has been recycled. A handle
// whose generation no longer matches the registry's counter is stale.
type Generation uint32

// Entity is a safe handle to one logical object. Handles are small,
// copyable and equality-comparable; they carry no other meaning for callers.
type Entity struct {
	ID  EntityID
	Gen Generation
}

// TypeID is a dense integer assigned to a component type at registration.
// TypeIDs index flat slices inside the component registry and double as bit
// positions in Mask values.
type TypeID uint8

// MaxComponentTypes bounds the number of distinct component types a single
// registry can hold. It equals the Mask width; registration past this limit
// fails with ErrTypeLimit rather than silently wrapping.
const MaxComponentTypes = 64

// Mask is a bit-set over component TypeIDs. Bit i is set when a component
// of type i is attached to the entity.
type Mask uint64

// NullMask is the mask of an entity with no components attached.
const NullMask Mask = 0

// Contains reports whether every bit of sub is set in m.
func (m Mask) Contains(sub Mask) bool {
	return m&sub == sub
}

// Intersects reports whether m and other share at least one bit.
func (m Mask) Intersects(other Mask) bool {
	return m&other != 0
}

// With returns m with all bits of other set.
func (m Mask) With(other Mask) Mask {
	return m | other
}

// Without returns m with all bits of other cleared.
func (m Mask) Without(other Mask) Mask {
	return m &^ other
}

// bit returns the single-bit mask for a TypeID.
func bit(id TypeID) Mask {
	return Mask(1) << id
}
