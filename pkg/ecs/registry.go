package ecs

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// componentStore is the type-erased face of a Pool. Only the operations the
// registry needs without knowing T are reachable through it; the typed pool
// is recovered via the registry's key-to-pool mapping and a checked
// assertion, never an unchecked cast.
type componentStore interface {
	drop(id EntityID)
	Size() int
}

// ComponentRegistry owns one Pool per registered component type behind a
// uniform erased handle. Each type gets a dense TypeID on first
// registration, fixed for the registry's lifetime, and the matching
// single-bit mask. Lookup is keyed by a 64-bit hash of the type's identity
// which indexes into flat slices, so typed operations never hash more than
// once per call.
type ComponentRegistry struct {
	limit    int
	capacity int

	ids   map[uint64]TypeID
	names []string
	masks []Mask
	pools []componentStore
}

// NewComponentRegistry creates a registry for up to limit distinct component
// types (clamped to MaxComponentTypes); capacity is the dense preallocation
// hint handed to each new pool.
func NewComponentRegistry(limit, capacity int) *ComponentRegistry {
	if limit > MaxComponentTypes {
		limit = MaxComponentTypes
	}
	return &ComponentRegistry{
		limit:    limit,
		capacity: capacity,
		ids:      make(map[uint64]TypeID, limit),
	}
}

// Size returns the number of registered component types.
func (r *ComponentRegistry) Size() int { return len(r.pools) }

// Empty reports whether no component type has been registered.
func (r *ComponentRegistry) Empty() bool { return len(r.pools) == 0 }

// TypeName returns the registered name for a TypeID, for diagnostics.
func (r *ComponentRegistry) TypeName(id TypeID) string {
	if int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// EntityDestroyed broadcasts the destruction of an entity to every pool,
// regardless of which types the entity actually carried. Pools treat the
// drop as a no-op when absent.
func (r *ComponentRegistry) EntityDestroyed(id EntityID) {
	for _, p := range r.pools {
		p.drop(id)
	}
}

// typeKey derives the stable 64-bit lookup key for a Go type. The package
// path disambiguates identically named types from different packages.
func typeKey(t reflect.Type) uint64 {
	return xxhash.Sum64String(t.PkgPath() + "|" + t.String())
}

func keyFor[T any]() (uint64, reflect.Type) {
	t := reflect.TypeFor[T]()
	return typeKey(t), t
}

// RegisterComponentType assigns the next free TypeID and single-bit mask to
// T and creates its pool. Registering the same type twice fails with
// ErrTypeRegistered and leaves the existing registration untouched.
func RegisterComponentType[T any](r *ComponentRegistry) error {
	key, t := keyFor[T]()
	if _, ok := r.ids[key]; ok {
		return errors.Wrapf(ErrTypeRegistered, "%s", t)
	}
	if len(r.pools) >= r.limit {
		return errors.Wrapf(ErrTypeLimit, "limit %d", r.limit)
	}
	id := TypeID(len(r.pools))
	r.ids[key] = id
	r.names = append(r.names, t.String())
	r.masks = append(r.masks, bit(id))
	r.pools = append(r.pools, NewPool[T](r.capacity))
	return nil
}

// ComponentTypeRegistered reports whether T has been registered.
func ComponentTypeRegistered[T any](r *ComponentRegistry) bool {
	key, _ := keyFor[T]()
	_, ok := r.ids[key]
	return ok
}

// ComponentTypeMask returns the single-bit mask assigned to T.
func ComponentTypeMask[T any](r *ComponentRegistry) (Mask, error) {
	_, mask, err := lookup[T](r)
	return mask, err
}

// PoolOf returns the typed pool for T. Every typed component operation
// routes through here, so an unregistered type surfaces as ErrTypeUnknown
// before any storage is touched.
func PoolOf[T any](r *ComponentRegistry) (*Pool[T], error) {
	pool, _, err := lookup[T](r)
	return pool, err
}

// lookup resolves T to its pool and mask in one pass.
func lookup[T any](r *ComponentRegistry) (*Pool[T], Mask, error) {
	key, t := keyFor[T]()
	id, ok := r.ids[key]
	if !ok {
		return nil, NullMask, errors.Wrapf(ErrTypeUnknown, "%s", t)
	}
	pool, ok := r.pools[id].(*Pool[T])
	if !ok {
		// Unreachable unless the registry maps were corrupted externally.
		return nil, NullMask, errors.Wrapf(ErrTypeUnknown, "pool mismatch for %s", t)
	}
	return pool, r.masks[id], nil
}
