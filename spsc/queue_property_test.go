// File: spsc/queue_property_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Randomized invariant tests: the queue is checked against a slice
// model over long mixed operation sequences.

package spsc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-spsc/spsc"
)

func TestQueue_PropertyRandomOps(t *testing.T) {
	const capacity = 13 // odd on purpose, wrap positions drift every cycle

	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		q, err := spsc.New[int](capacity)
		require.NoError(t, err)

		var model []int
		for i := 0; i < 5000; i++ {
			val := rnd.Intn(100000)
			switch rnd.Intn(3) {
			case 0:
				if q.TryEnqueue(val) {
					model = append(model, val)
				} else {
					require.Len(t, model, capacity, "seed %d op %d: rejected below capacity", seed, i)
				}
			case 1:
				got, ok := q.TryDequeue()
				if len(model) == 0 {
					require.False(t, ok, "seed %d op %d: dequeued from empty model", seed, i)
				} else {
					require.True(t, ok, "seed %d op %d: empty signal below model size", seed, i)
					require.Equal(t, model[0], got, "seed %d op %d", seed, i)
					model = model[1:]
				}
			case 2:
				front := q.Front()
				if len(model) == 0 {
					require.Nil(t, front, "seed %d op %d", seed, i)
				} else {
					require.NotNil(t, front, "seed %d op %d", seed, i)
					require.Equal(t, model[0], *front, "seed %d op %d", seed, i)
				}
			}
			require.Equal(t, len(model), q.Len(), "seed %d op %d", seed, i)
			require.Equal(t, len(model) == 0, q.Empty(), "seed %d op %d", seed, i)
		}
	}
}
