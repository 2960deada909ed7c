package ecs

// Event types published on the scene bus. Subscribe through
// Scene.Events(); payloads are the structs below.
const (
	EventEntityCreated    = "entity.created"
	EventEntityDestroyed  = "entity.destroyed"
	EventComponentAdded   = "component.added"
	EventComponentRemoved = "component.removed"
	EventSystemAdded      = "system.added"
	EventSystemRemoved    = "system.removed"
)

// EntityEvent is the payload of entity.created and entity.destroyed.
type EntityEvent struct {
	Entity Entity
}

// ComponentEvent is the payload of component.added and component.removed.
type ComponentEvent struct {
	Entity Entity
	Type   string
}

// SystemEvent is the payload of system.added and system.removed.
type SystemEvent struct {
	Name     string
	Priority int
}
