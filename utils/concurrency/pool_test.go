package concurrency

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {

	t.Run("NoError", func(t *testing.T) {

		acc := make([]int, 8)

		p := NewPool(make([]bool, 4))

		for i := range acc {
			p.Go(func(r bool) (err error) {
				acc[i]++
				return
			})
		}

		require.NoError(t, p.Wait())

		for i := range acc {
			require.Equal(t, 1, acc[i])
		}
	})

	t.Run("WithError", func(t *testing.T) {

		p := NewPool(make([]bool, 4))

		for i := 0; i < 8; i++ {
			p.Go(func(r bool) (err error) {
				if i == 2 {
					return fmt.Errorf("something bad happened")
				}
				return
			})
		}

		require.Error(t, p.Wait())
	})

	t.Run("BoundedByRessources", func(t *testing.T) {

		var running, peak atomic.Int32

		p := NewPool([]int{0, 1})

		for i := 0; i < 16; i++ {
			p.Go(func(r int) (err error) {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				running.Add(-1)
				return
			})
		}

		require.NoError(t, p.Wait())
		require.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("Empty", func(t *testing.T) {
		require.Panics(t, func() { NewPool[int](nil) })
	})
}
