package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sasakali/ecs/pkg/sequence"
)

func TestForEach(t *testing.T) {
	var sum int64
	err := ForEach(sequence.From([]int64{1, 2, 3, 4}), func(v int64) error {
		atomic.AddInt64(&sum, v)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), sum)
}

func TestForEachPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(sequence.From([]int{1, 2, 3}), func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestForEachLimit(t *testing.T) {
	var active, peak int64
	err := ForEachLimit(sequence.From(make([]struct{}, 64)), 4, func(struct{}) error {
		n := atomic.AddInt64(&active, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		atomic.AddInt64(&active, -1)
		return nil
	})
	require.NoError(t, err)
	require.LessOrEqual(t, peak, int64(4))
}
