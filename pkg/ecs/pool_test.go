package ecs

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type health struct {
	HP int
}

func TestPool_AssignAndGet(t *testing.T) {
	p := NewPool[health](8)

	require.True(t, p.Empty())
	require.False(t, p.Has(0))
	require.False(t, p.Has(9999)) // out of range is absent, not an error

	p.Assign(3, health{HP: 10})
	require.True(t, p.Has(3))
	require.Equal(t, 1, p.Size())

	got, err := p.Get(3)
	require.NoError(t, err)
	require.Equal(t, 10, got.HP)

	// Mutation through the pointer sticks.
	got.HP = 25
	again, _ := p.Get(3)
	require.Equal(t, 25, again.HP)

	// Assigning an existing id overwrites in place.
	p.Assign(3, health{HP: 1})
	require.Equal(t, 1, p.Size())
	got, _ = p.Get(3)
	require.Equal(t, 1, got.HP)

	_, err = p.Get(7)
	require.True(t, errors.Is(err, ErrMissingComponent))
}

func TestPool_UnassignSwapsWithLast(t *testing.T) {
	p := NewPool[health](8)
	p.Assign(10, health{HP: 1})
	p.Assign(20, health{HP: 2})
	p.Assign(30, health{HP: 3})

	// Removing the middle element keeps the others retrievable with their
	// original values and the pool dense.
	require.NoError(t, p.Unassign(20))
	require.Equal(t, 2, p.Size())
	require.False(t, p.Has(20))

	first, err := p.Get(10)
	require.NoError(t, err)
	require.Equal(t, 1, first.HP)
	last, err := p.Get(30)
	require.NoError(t, err)
	require.Equal(t, 3, last.HP)

	// Unassigning an absent id is loud.
	err = p.Unassign(20)
	require.True(t, errors.Is(err, ErrMissingComponent))
	err = p.Unassign(9999)
	require.True(t, errors.Is(err, ErrMissingComponent))
}

func TestPool_DropIsTolerant(t *testing.T) {
	p := NewPool[health](4)
	p.Assign(1, health{HP: 5})

	p.drop(1)
	require.False(t, p.Has(1))

	// Absent and out-of-range ids are no-ops.
	p.drop(1)
	p.drop(12345)
	require.Equal(t, 0, p.Size())
}

func TestPool_DenseInvariantHolds(t *testing.T) {
	p := NewPool[health](8)
	rng := rand.New(rand.NewSource(1))
	live := make(map[EntityID]int)

	for i := 0; i < 2000; i++ {
		id := EntityID(rng.Intn(64))
		if rng.Intn(2) == 0 {
			hp := rng.Int()
			p.Assign(id, health{HP: hp})
			live[id] = hp
		} else if _, ok := live[id]; ok {
			require.NoError(t, p.Unassign(id))
			delete(live, id)
		}
		requireDense(t, p, live)
	}
}

// requireDense checks the sparse/dense cross-references after every step:
// equal dense lengths, id -> slot -> id round trips, and content matching
// the model map.
func requireDense(t *testing.T, p *Pool[health], live map[EntityID]int) {
	t.Helper()
	require.Equal(t, len(p.ids), len(p.values))
	require.Equal(t, len(live), p.Size())
	for id, slot := range p.sparse {
		if slot == noIndex {
			continue
		}
		require.Equal(t, EntityID(id), p.ids[slot])
	}
	for id, hp := range live {
		got, err := p.Get(id)
		require.NoError(t, err)
		require.Equal(t, hp, got.HP)
	}
}

func TestPool_EachAndOwners(t *testing.T) {
	p := NewPool[health](4)
	p.Assign(5, health{HP: 50})
	p.Assign(6, health{HP: 60})
	p.Assign(7, health{HP: 70})

	sum := 0
	p.Each(func(id EntityID, h *health) bool {
		sum += h.HP
		return true
	})
	require.Equal(t, 180, sum)

	require.Equal(t, []EntityID{5, 6, 7}, p.Owners())

	// Early exit.
	seen := 0
	p.Each(func(EntityID, *health) bool {
		seen++
		return false
	})
	require.Equal(t, 1, seen)
}
