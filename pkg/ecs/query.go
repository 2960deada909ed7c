package ecs

import "github.com/sasakali/ecs/pkg/sequence"

// Queries materialize a snapshot of the live entities whose capability mask
// contains every requested bit. The returned slice is a value sequence, not
// a live view: callers may freely create and destroy entities while
// iterating it, and mutations never retroactively change an already
// returned result.

// QueryMask returns every live entity whose mask contains all bits of
// required. NullMask matches every live entity.
func (s *Scene) QueryMask(required Mask) []Entity {
	return s.entities.Matching(required)
}

// QueryIter is QueryMask wrapped in a chainable iterator.
func (s *Scene) QueryIter(required Mask) *sequence.Iterator[Entity] {
	return sequence.From(s.QueryMask(required))
}

// Query returns every live entity carrying a component of type A.
func Query[A any](s *Scene) ([]Entity, error) {
	mask, err := ComponentTypeMask[A](s.components)
	if err != nil {
		return nil, err
	}
	return s.QueryMask(mask), nil
}

// Query2 returns every live entity carrying components of types A and B.
func Query2[A, B any](s *Scene) ([]Entity, error) {
	mask, err := maskOf2[A, B](s)
	if err != nil {
		return nil, err
	}
	return s.QueryMask(mask), nil
}

// Query3 returns every live entity carrying components of types A, B and C.
func Query3[A, B, C any](s *Scene) ([]Entity, error) {
	mask, err := maskOf2[A, B](s)
	if err != nil {
		return nil, err
	}
	mc, err := ComponentTypeMask[C](s.components)
	if err != nil {
		return nil, err
	}
	return s.QueryMask(mask.With(mc)), nil
}

// Query4 returns every live entity carrying components of types A, B, C
// and D.
func Query4[A, B, C, D any](s *Scene) ([]Entity, error) {
	ma, err := maskOf2[A, B](s)
	if err != nil {
		return nil, err
	}
	mb, err := maskOf2[C, D](s)
	if err != nil {
		return nil, err
	}
	return s.QueryMask(ma.With(mb)), nil
}

func maskOf2[A, B any](s *Scene) (Mask, error) {
	ma, err := ComponentTypeMask[A](s.components)
	if err != nil {
		return NullMask, err
	}
	mb, err := ComponentTypeMask[B](s.components)
	if err != nil {
		return NullMask, err
	}
	return ma.With(mb), nil
}
