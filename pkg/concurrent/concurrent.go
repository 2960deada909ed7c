// Package concurrent fans work out over the elements of a sequence.Iterator.
//
// These helpers are for read-only post-processing of already materialized
// snapshots; they must not be pointed at state that other goroutines are
// mutating.
package concurrent

import (
	"golang.org/x/sync/errgroup"

	"github.com/sasakali/ecs/pkg/sequence"
)

// ForEach runs action for every element in its own goroutine and waits for
// all of them. The first non-nil error is returned.
func ForEach[T any](it *sequence.Iterator[T], action func(T) error) error {
	return ForEachLimit(it, 0, action)
}

// ForEachLimit is ForEach with at most limit goroutines running at once.
// limit <= 0 means no bound.
func ForEachLimit[T any](it *sequence.Iterator[T], limit int, action func(T) error) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	next, stop := it.Pull()
	defer stop()
	for {
		v, ok := next()
		if !ok {
			break
		}
		g.Go(func() error { return action(v) })
	}
	return g.Wait()
}
