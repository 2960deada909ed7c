package ecs

import "github.com/pkg/errors"

// EntityRegistry owns the identifier lifecycle: allocation, generation
// counters, recycling and the per-entity capability mask. It is the sole
// authority on whether a handle is still valid.
//
// Validity is tracked by a dedicated alive flag per slot; the mask is purely
// a component-membership bitmap and may legitimately be zero, so a freshly
// created entity with no components is valid.
type EntityRegistry struct {
	limit    int
	recycled []EntityID

	gens  []Generation
	masks []Mask
	alive []bool

	count int
}

// NewEntityRegistry creates a registry bounded to limit distinct identifiers,
// with storage preallocated for capacity slots.
func NewEntityRegistry(limit, capacity int) *EntityRegistry {
	if capacity > limit {
		capacity = limit
	}
	return &EntityRegistry{
		limit:    limit,
		recycled: make([]EntityID, 0, 16),
		gens:     make([]Generation, 0, capacity),
		masks:    make([]Mask, 0, capacity),
		alive:    make([]bool, 0, capacity),
	}
}

// Size returns the number of currently live entities.
func (r *EntityRegistry) Size() int { return r.count }

// Empty reports whether no entity is currently live.
func (r *EntityRegistry) Empty() bool { return r.count == 0 }

// Limit returns the maximum number of distinct identifiers.
func (r *EntityRegistry) Limit() int { return r.limit }

// Alive reports whether the handle refers to a live entity: its generation
// matches the slot's counter and the slot has not been destroyed. Stale
// handles from before a destroy/recreate cycle always fail this check.
func (r *EntityRegistry) Alive(e Entity) bool {
	i := int(e.ID)
	return i < len(r.gens) && r.gens[i] == e.Gen && r.alive[i]
}

// Create allocates an entity with the given initial mask. Recycled
// identifiers are preferred; they keep the generation bumped at their
// previous destruction, so handles to the prior incarnation stay invalid.
func (r *EntityRegistry) Create(mask Mask) (Entity, error) {
	if n := len(r.recycled); n > 0 {
		id := r.recycled[n-1]
		r.recycled = r.recycled[:n-1]
		r.masks[id] = mask
		r.alive[id] = true
		r.count++
		return Entity{ID: id, Gen: r.gens[id]}, nil
	}
	if len(r.gens) >= r.limit {
		return Entity{}, errors.Wrapf(ErrEntityLimit, "limit %d", r.limit)
	}
	id := EntityID(len(r.gens))
	r.gens = append(r.gens, 0)
	r.masks = append(r.masks, mask)
	r.alive = append(r.alive, true)
	r.count++
	return Entity{ID: id}, nil
}

// Destroy invalidates the handle and every copy of it by bumping the slot's
// generation, clears the capability mask and returns the identifier to the
// free list.
func (r *EntityRegistry) Destroy(e Entity) error {
	if !r.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "destroy %d/%d", e.ID, e.Gen)
	}
	r.gens[e.ID]++
	r.masks[e.ID] = NullMask
	r.alive[e.ID] = false
	r.recycled = append(r.recycled, e.ID)
	r.count--
	return nil
}

// MaskOf returns the entity's capability mask.
func (r *EntityRegistry) MaskOf(e Entity) (Mask, error) {
	if !r.Alive(e) {
		return NullMask, errors.Wrapf(ErrInvalidEntity, "mask of %d/%d", e.ID, e.Gen)
	}
	return r.masks[e.ID], nil
}

// SetMask replaces the entity's capability mask.
func (r *EntityRegistry) SetMask(e Entity, mask Mask) error {
	if !r.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "set mask of %d/%d", e.ID, e.Gen)
	}
	r.masks[e.ID] = mask
	return nil
}

// AddMask ORs the given bits into the entity's capability mask.
func (r *EntityRegistry) AddMask(e Entity, mask Mask) error {
	if !r.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "add mask to %d/%d", e.ID, e.Gen)
	}
	r.masks[e.ID] = r.masks[e.ID].With(mask)
	return nil
}

// RemoveMask clears the given bits from the entity's capability mask.
func (r *EntityRegistry) RemoveMask(e Entity, mask Mask) error {
	if !r.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "remove mask from %d/%d", e.ID, e.Gen)
	}
	r.masks[e.ID] = r.masks[e.ID].Without(mask)
	return nil
}

// Each calls fn for every live entity in identifier order until fn returns
// false. The registry must not be mutated during the walk; use Matching or
// Active for a snapshot that survives mutation.
func (r *EntityRegistry) Each(fn func(Entity) bool) {
	for i := range r.gens {
		if !r.alive[i] {
			continue
		}
		if !fn(Entity{ID: EntityID(i), Gen: r.gens[i]}) {
			return
		}
	}
}

// Active returns a snapshot of every live handle.
func (r *EntityRegistry) Active() []Entity {
	out := make([]Entity, 0, r.count)
	r.Each(func(e Entity) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Matching returns a snapshot of every live handle whose mask contains all
// bits of required. With required == NullMask it is equivalent to Active.
func (r *EntityRegistry) Matching(required Mask) []Entity {
	out := make([]Entity, 0)
	for i := range r.gens {
		if r.alive[i] && r.masks[i].Contains(required) {
			out = append(out, Entity{ID: EntityID(i), Gen: r.gens[i]})
		}
	}
	return out
}
