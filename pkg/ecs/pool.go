package ecs

import (
	"math"

	"github.com/pkg/errors"
)

// noIndex marks a sparse slot with no component attached.
const noIndex = uint32(math.MaxUint32)

// Pool is the dense storage for every live instance of one component type.
//
// Three parallel structures implement the sparse-set pattern: sparse maps an
// EntityID to a position in the dense arrays (noIndex when absent), ids is
// the inverse map from dense position back to EntityID, and values holds the
// component data itself, contiguous in memory for cache-friendly iteration.
// Removal swaps the last element into the vacated slot, so the dense arrays
// never develop holes and all operations stay O(1).
type Pool[T any] struct {
	sparse []uint32
	ids    []EntityID
	values []T
}

// NewPool creates an empty pool with dense storage preallocated for
// capacity components.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		ids:    make([]EntityID, 0, capacity),
		values: make([]T, 0, capacity),
	}
}

// Size returns the number of components currently in the pool.
func (p *Pool[T]) Size() int { return len(p.values) }

// Empty reports whether the pool holds no components.
func (p *Pool[T]) Empty() bool { return len(p.values) == 0 }

// Has reports whether the entity has a component in this pool. Identifiers
// beyond the sparse range are absent, not an error.
func (p *Pool[T]) Has(id EntityID) bool {
	return int(id) < len(p.sparse) && p.sparse[id] != noIndex
}

// Get returns a mutable pointer to the entity's component.
func (p *Pool[T]) Get(id EntityID) (*T, error) {
	if !p.Has(id) {
		return nil, errors.Wrapf(ErrMissingComponent, "entity %d", id)
	}
	return &p.values[p.sparse[id]], nil
}

// Assign attaches a component to the entity, overwriting in place when one
// is already present. The sparse index grows as needed to cover id.
func (p *Pool[T]) Assign(id EntityID, value T) {
	if int(id) >= len(p.sparse) {
		grown := make([]uint32, int(id)+1)
		copy(grown, p.sparse)
		for i := len(p.sparse); i < len(grown); i++ {
			grown[i] = noIndex
		}
		p.sparse = grown
	}
	if slot := p.sparse[id]; slot != noIndex {
		p.values[slot] = value
		return
	}
	p.sparse[id] = uint32(len(p.values))
	p.ids = append(p.ids, id)
	p.values = append(p.values, value)
}

// Unassign detaches the entity's component. It fails with
// ErrMissingComponent when the entity has none; use drop for the tolerant
// variant. The last dense element is swapped into the vacated slot to keep
// the arrays contiguous.
func (p *Pool[T]) Unassign(id EntityID) error {
	if !p.Has(id) {
		return errors.Wrapf(ErrMissingComponent, "unassign entity %d", id)
	}
	p.remove(id)
	return nil
}

// drop removes the entity's component if present. It is the erased hook the
// component registry broadcasts on entity destruction, and a safe no-op for
// entities that never carried this type.
func (p *Pool[T]) drop(id EntityID) {
	if p.Has(id) {
		p.remove(id)
	}
}

func (p *Pool[T]) remove(id EntityID) {
	slot := p.sparse[id]
	last := uint32(len(p.values) - 1)
	if slot != last {
		mover := p.ids[last]
		p.values[slot] = p.values[last]
		p.ids[slot] = mover
		p.sparse[mover] = slot
	}
	var zero T
	p.values[last] = zero // release references held by the component
	p.values = p.values[:last]
	p.ids = p.ids[:last]
	p.sparse[id] = noIndex
}

// Each calls fn for every component in dense order until fn returns false.
// The pool must not be mutated during the walk.
func (p *Pool[T]) Each(fn func(EntityID, *T) bool) {
	for i := range p.values {
		if !fn(p.ids[i], &p.values[i]) {
			return
		}
	}
}

// Owners returns a snapshot of the entity identifiers currently in the pool,
// in dense order.
func (p *Pool[T]) Owners() []EntityID {
	out := make([]EntityID, len(p.ids))
	copy(out, p.ids)
	return out
}
