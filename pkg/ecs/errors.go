package ecs

import "github.com/pkg/errors"

// All core failures are synchronous and local. An operation that reports an
// error has not mutated any internal state; callers decide whether a failure
// is fatal. Errors are wrapped with call-site context, match with errors.Is.
var (
	// ErrEntityLimit is returned when the configured maximum number of
	// entity identifiers would be exceeded.
	ErrEntityLimit = errors.New("ecs: entity limit reached")

	// ErrInvalidEntity is returned for any operation addressed at a handle
	// whose generation is stale or whose slot is not alive.
	ErrInvalidEntity = errors.New("ecs: invalid entity handle")

	// ErrTypeRegistered is returned when registering a component type twice.
	ErrTypeRegistered = errors.New("ecs: component type already registered")

	// ErrTypeUnknown is returned for component operations on a type that
	// was never registered.
	ErrTypeUnknown = errors.New("ecs: component type not registered")

	// ErrTypeLimit is returned when the component type ID space is
	// exhausted.
	ErrTypeLimit = errors.New("ecs: component type limit reached")

	// ErrMissingComponent is returned by typed access on an entity that
	// does not carry the requested component.
	ErrMissingComponent = errors.New("ecs: entity has no such component")

	// ErrSystemRegistered is returned when adding a system type twice.
	ErrSystemRegistered = errors.New("ecs: system already added")

	// ErrSystemUnknown is returned when operating on a system type that was
	// never added.
	ErrSystemUnknown = errors.New("ecs: system not found")
)
