package ecs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestScene_Query(t *testing.T) {
	t.Run("Filters By Component Set", func(t *testing.T) {
		s := newTestScene(t)
		require.NoError(t, RegisterComponent[position](s))
		require.NoError(t, RegisterComponent[velocity](s))

		e, _ := s.CreateEntity()
		require.NoError(t, AddComponent(s, e, position{X: 10, Y: 10}))
		require.NoError(t, AddComponent(s, e, velocity{DX: 5, DY: 2}))

		both, err := Query2[position, velocity](s)
		require.NoError(t, err)
		require.Equal(t, []Entity{e}, both)

		pos, err := Query[position](s)
		require.NoError(t, err)
		require.Equal(t, []Entity{e}, pos)

		vel, err := Query[velocity](s)
		require.NoError(t, err)
		require.Equal(t, []Entity{e}, vel)
	})

	t.Run("Superset Semantics", func(t *testing.T) {
		s := newTestScene(t)
		require.NoError(t, RegisterComponent[position](s))
		require.NoError(t, RegisterComponent[velocity](s))
		require.NoError(t, RegisterComponent[tag](s))

		moving, _ := s.CreateEntity()
		require.NoError(t, AddComponent(s, moving, position{}))
		require.NoError(t, AddComponent(s, moving, velocity{}))

		static, _ := s.CreateEntity()
		require.NoError(t, AddComponent(s, static, position{}))

		tagged, _ := s.CreateEntity()
		require.NoError(t, AddComponent(s, tagged, position{}))
		require.NoError(t, AddComponent(s, tagged, tag{}))

		bare, _ := s.CreateEntity()

		pos, _ := Query[position](s)
		require.ElementsMatch(t, []Entity{moving, static, tagged}, pos)

		pv, _ := Query2[position, velocity](s)
		require.Equal(t, []Entity{moving}, pv)

		pt, _ := Query2[position, tag](s)
		require.Equal(t, []Entity{tagged}, pt)

		all3, _ := Query3[position, velocity, tag](s)
		require.Empty(t, all3)

		// The empty mask matches every live entity, bare ones included.
		require.Len(t, s.QueryMask(NullMask), 4)
		_ = bare
	})

	t.Run("Snapshot Not Live View", func(t *testing.T) {
		s := newTestScene(t)
		require.NoError(t, RegisterComponent[tag](s))

		var made []Entity
		for i := 0; i < 4; i++ {
			e, _ := s.CreateEntity()
			require.NoError(t, AddComponent(s, e, tag{}))
			made = append(made, e)
		}

		snapshot, err := Query[tag](s)
		require.NoError(t, err)
		require.Len(t, snapshot, 4)

		// Mutations while iterating never disturb the materialized result.
		for _, e := range snapshot {
			require.NoError(t, s.DestroyEntity(e))
			fresh, _ := s.CreateEntity()
			require.NoError(t, AddComponent(s, fresh, tag{}))
		}
		require.Equal(t, made, snapshot)

		next, _ := Query[tag](s)
		require.Len(t, next, 4)
		for _, e := range made {
			require.NotContains(t, next, e)
		}
	})

	t.Run("Unregistered Type Fails", func(t *testing.T) {
		s := newTestScene(t)
		_, err := Query[position](s)
		require.True(t, errors.Is(err, ErrTypeUnknown))

		require.NoError(t, RegisterComponent[position](s))
		_, err = Query2[position, velocity](s)
		require.True(t, errors.Is(err, ErrTypeUnknown))
	})
}

func TestScene_QueryIter(t *testing.T) {
	s := newTestScene(t)
	require.NoError(t, RegisterComponent[position](s))

	for i := 0; i < 5; i++ {
		e, _ := s.CreateEntity()
		require.NoError(t, AddComponent(s, e, position{X: float64(i)}))
	}

	mask, _ := MaskFor[position](s)
	right := s.QueryIter(mask).Filter(func(e Entity) bool {
		p, err := GetComponent[position](s, e)
		require.NoError(t, err)
		return p.X >= 3
	}).Collect()
	require.Len(t, right, 2)

	require.Equal(t, 5, s.QueryIter(mask).Count())
}
