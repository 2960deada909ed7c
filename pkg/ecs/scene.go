package ecs

import (
	"reflect"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sasakali/ecs/internal/core/observability/log"
	"github.com/sasakali/ecs/pkg/events"
	"github.com/sasakali/ecs/pkg/generic"
)

// Scene is the orchestrator: the single owner of one EntityRegistry, one
// ComponentRegistry and an ordered list of systems. Every entity and
// component mutation goes through the Scene so the capability masks stay in
// lockstep with the pools.
//
// Ownership is strictly tree-shaped; registries and systems are never
// shared between two Scenes.
type Scene struct {
	id  uuid.UUID
	log log.Log
	bus *events.Bus

	entities   *EntityRegistry
	components *ComponentRegistry
	names      *nameIndex

	// systems stays sorted by ascending priority; sysIndex maps a system's
	// type key to its current position and is rebuilt whenever positions
	// change.
	systems  []System
	sysIndex map[uint64]int

	passBuf *generic.Pool[[]System]
}

// NewScene builds a Scene from cfg. Zero config fields take their defaults,
// so NewScene(ecs.Config{}) is valid.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	s := &Scene{
		id:         uuid.New(),
		bus:        events.NewBus(),
		entities:   NewEntityRegistry(cfg.MaxEntities, cfg.InitialCapacity),
		components: NewComponentRegistry(cfg.MaxComponentTypes, cfg.InitialCapacity),
		names:      newNameIndex(),
		sysIndex:   make(map[uint64]int),
		passBuf: generic.NewPool(func() []System {
			return make([]System, 0, 16)
		}),
	}
	s.log = log.New(log.ParseLevel(cfg.LogLevel)).With(
		log.String("scene", s.id.String()),
	)
	s.log.Debug("scene created",
		log.Int("max_entities", cfg.MaxEntities),
		log.Int("max_component_types", cfg.MaxComponentTypes),
	)
	return s, nil
}

// ID returns the scene's unique instance identifier.
func (s *Scene) ID() uuid.UUID { return s.id }

// Events returns the scene's lifecycle event bus.
func (s *Scene) Events() *events.Bus { return s.bus }

// Entities exposes the entity registry for read access and enumeration.
// Mutations must go through the Scene.
func (s *Scene) Entities() *EntityRegistry { return s.entities }

// Components exposes the component registry for read access and pool
// iteration. Mutations must go through the Scene.
func (s *Scene) Components() *ComponentRegistry { return s.components }

// CreateEntity allocates a new entity with an empty capability mask.
func (s *Scene) CreateEntity() (Entity, error) {
	e, err := s.entities.Create(NullMask)
	if err != nil {
		return Entity{}, err
	}
	s.log.Debug("entity created", log.Uint32("id", uint32(e.ID)), log.Uint32("gen", uint32(e.Gen)))
	s.publish(EventEntityCreated, EntityEvent{Entity: e})
	return e, nil
}

// DestroyEntity invalidates the handle and purges the entity's component
// data from every pool. The registry slot is invalidated first, so no
// reader between the two steps can observe a valid entity with missing
// components.
func (s *Scene) DestroyEntity(e Entity) error {
	if err := s.entities.Destroy(e); err != nil {
		return err
	}
	s.components.EntityDestroyed(e.ID)
	s.names.clearEntity(e.ID)
	s.log.Debug("entity destroyed", log.Uint32("id", uint32(e.ID)), log.Uint32("gen", uint32(e.Gen)))
	s.publish(EventEntityDestroyed, EntityEvent{Entity: e})
	return nil
}

// EntityAlive reports whether the handle refers to a live entity.
func (s *Scene) EntityAlive(e Entity) bool {
	return s.entities.Alive(e)
}

// EntityMask returns the entity's capability mask, read-only diagnostics
// for callers; query by component type instead of raw bits where possible.
func (s *Scene) EntityMask(e Entity) (Mask, error) {
	return s.entities.MaskOf(e)
}

// HasAll reports whether the entity's mask contains every bit of required.
func (s *Scene) HasAll(e Entity, required Mask) (bool, error) {
	m, err := s.entities.MaskOf(e)
	if err != nil {
		return false, err
	}
	return m.Contains(required), nil
}

// publish sends a lifecycle event; handler failures are surfaced in the log
// but never fail the triggering operation.
func (s *Scene) publish(eventType string, data any) {
	if err := s.bus.Publish(events.New(eventType, data)); err != nil {
		s.log.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

// ----------------------------------------
// Typed component operations
// ----------------------------------------

// RegisterComponent registers T with the scene's component registry.
func RegisterComponent[T any](s *Scene) error {
	if err := RegisterComponentType[T](s.components); err != nil {
		return err
	}
	mask, _ := ComponentTypeMask[T](s.components)
	s.log.Debug("component type registered",
		log.String("type", reflect.TypeFor[T]().String()),
		log.Uint64("mask", uint64(mask)),
	)
	return nil
}

// AddComponent attaches a component value to the entity and sets the
// matching capability bit. Assigning a type the entity already carries
// overwrites the value in place.
func AddComponent[T any](s *Scene, e Entity, value T) error {
	if !s.entities.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "add component to %d/%d", e.ID, e.Gen)
	}
	pool, mask, err := lookup[T](s.components)
	if err != nil {
		return err
	}
	pool.Assign(e.ID, value)
	_ = s.entities.AddMask(e, mask) // entity validated above
	s.publish(EventComponentAdded, ComponentEvent{Entity: e, Type: reflect.TypeFor[T]().String()})
	return nil
}

// RemoveComponent detaches the entity's component of type T and clears the
// matching capability bit. The mask is only touched after the pool removal
// succeeds, so a failed call leaves both sides consistent.
func RemoveComponent[T any](s *Scene, e Entity) error {
	if !s.entities.Alive(e) {
		return errors.Wrapf(ErrInvalidEntity, "remove component from %d/%d", e.ID, e.Gen)
	}
	pool, mask, err := lookup[T](s.components)
	if err != nil {
		return err
	}
	if err = pool.Unassign(e.ID); err != nil {
		return err
	}
	_ = s.entities.RemoveMask(e, mask)
	s.publish(EventComponentRemoved, ComponentEvent{Entity: e, Type: reflect.TypeFor[T]().String()})
	return nil
}

// GetComponent returns a mutable pointer to the entity's component of type
// T. The pointer stays valid until the next mutation of T's pool.
func GetComponent[T any](s *Scene, e Entity) (*T, error) {
	if !s.entities.Alive(e) {
		return nil, errors.Wrapf(ErrInvalidEntity, "get component of %d/%d", e.ID, e.Gen)
	}
	pool, _, err := lookup[T](s.components)
	if err != nil {
		return nil, err
	}
	return pool.Get(e.ID)
}

// HasComponent reports whether the entity carries a component of type T,
// answered from the capability mask alone.
func HasComponent[T any](s *Scene, e Entity) (bool, error) {
	mask, err := ComponentTypeMask[T](s.components)
	if err != nil {
		return false, err
	}
	return s.HasAll(e, mask)
}

// MaskFor returns T's single-bit mask, for building compound query masks.
func MaskFor[T any](s *Scene) (Mask, error) {
	return ComponentTypeMask[T](s.components)
}

// ----------------------------------------
// System management
// ----------------------------------------

// systemType resolves a system instance to its identity type. Systems are
// added as pointers; the pointee type is the key.
func systemType(sys System) reflect.Type {
	t := reflect.TypeOf(sys)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// AddSystem adds a system instance, keyed by its concrete type. The system
// list is re-sorted by ascending priority with a stable sort, so equal
// priorities keep insertion order.
func (s *Scene) AddSystem(sys System) error {
	t := systemType(sys)
	key := typeKey(t)
	if _, ok := s.sysIndex[key]; ok {
		return errors.Wrapf(ErrSystemRegistered, "%s", t)
	}
	s.systems = append(s.systems, sys)
	s.sortSystems()
	s.log.Info("system added", log.String("system", t.String()), log.Int("priority", sys.Priority()))
	s.publish(EventSystemAdded, SystemEvent{Name: t.String(), Priority: sys.Priority()})
	return nil
}

// SystemCount returns the number of systems currently in the scene.
func (s *Scene) SystemCount() int { return len(s.systems) }

func (s *Scene) sortSystems() {
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
	s.rebuildSystemIndex()
}

func (s *Scene) rebuildSystemIndex() {
	clear(s.sysIndex)
	for i, sys := range s.systems {
		s.sysIndex[typeKey(systemType(sys))] = i
	}
}

// HasSystem reports whether a system of type T has been added.
func HasSystem[T any](s *Scene) bool {
	_, ok := s.sysIndex[typeKey(reflect.TypeFor[T]())]
	return ok
}

// SystemOf returns the scene's system instance of type T.
func SystemOf[T any](s *Scene) (*T, error) {
	t := reflect.TypeFor[T]()
	idx, ok := s.sysIndex[typeKey(t)]
	if !ok {
		return nil, errors.Wrapf(ErrSystemUnknown, "%s", t)
	}
	sys, ok := any(s.systems[idx]).(*T)
	if !ok {
		return nil, errors.Wrapf(ErrSystemUnknown, "%s was not added as a pointer", t)
	}
	return sys, nil
}

// RemoveSystem removes the system of type T. Remaining systems keep their
// relative order; only the position index is rebuilt.
func RemoveSystem[T any](s *Scene) error {
	t := reflect.TypeFor[T]()
	key := typeKey(t)
	idx, ok := s.sysIndex[key]
	if !ok {
		return errors.Wrapf(ErrSystemUnknown, "%s", t)
	}
	prio := s.systems[idx].Priority()
	s.systems = append(s.systems[:idx], s.systems[idx+1:]...)
	s.rebuildSystemIndex()
	s.log.Info("system removed", log.String("system", t.String()))
	s.publish(EventSystemRemoved, SystemEvent{Name: t.String(), Priority: prio})
	return nil
}

// SystemEnabled reports whether the system of type T is enabled.
func SystemEnabled[T any](s *Scene) (bool, error) {
	sys, err := systemByKey[T](s)
	if err != nil {
		return false, err
	}
	return sys.Enabled(), nil
}

// SetSystemEnabled toggles the system of type T. Takes effect immediately:
// a system disabled during an update pass will not run later in that pass.
func SetSystemEnabled[T any](s *Scene, enabled bool) error {
	sys, err := systemByKey[T](s)
	if err != nil {
		return err
	}
	sys.SetEnabled(enabled)
	return nil
}

func systemByKey[T any](s *Scene) (System, error) {
	t := reflect.TypeFor[T]()
	idx, ok := s.sysIndex[typeKey(t)]
	if !ok {
		return nil, errors.Wrapf(ErrSystemUnknown, "%s", t)
	}
	return s.systems[idx], nil
}

// Update runs one frame: every enabled system, in ascending priority order,
// receives the scene and the elapsed time in seconds.
//
// The pass iterates over a snapshot of the ordering taken at pass start, so
// systems may add or remove systems mid-pass without disturbing the current
// frame. Enabled flags are read live at each system's turn.
func (s *Scene) Update(dt float64) {
	pass := s.passBuf.Get()
	pass = append(pass[:0], s.systems...)
	for _, sys := range pass {
		if sys.Enabled() {
			sys.Update(s, dt)
		}
	}
	s.passBuf.Put(pass[:0])
}
