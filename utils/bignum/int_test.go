package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {

	t.Run("NewInt", func(t *testing.T) {
		require.Equal(t, 0, NewInt(-7).Cmp(big.NewInt(-7)))
		require.Equal(t, 0, NewInt(uint64(1<<63)).Cmp(new(big.Int).Lsh(big.NewInt(1), 63)))
		require.Equal(t, 0, NewInt(uint8(255)).Cmp(big.NewInt(255)))
	})

	t.Run("LCM", func(t *testing.T) {
		z := new(big.Int)
		require.Equal(t, int64(12), LCM(z, big.NewInt(4), big.NewInt(6)).Int64())
		require.Equal(t, int64(12), LCM(z, big.NewInt(-4), big.NewInt(6)).Int64())
		require.Equal(t, int64(0), LCM(z, big.NewInt(0), big.NewInt(6)).Int64())
	})

	t.Run("LCMOf", func(t *testing.T) {
		require.Equal(t, int64(1), LCMOf[int]().Int64())
		require.Equal(t, int64(6), LCMOf(3, 2, 2).Int64())
		require.Equal(t, int64(60), LCMOf(3, 4, 5).Int64())
	})
}
