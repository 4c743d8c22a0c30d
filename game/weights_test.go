package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeights(t *testing.T) {
	t.Run("symmetric under reflections", func(t *testing.T) {
		n := BoardSize - 1
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				w := Weight(x, y)
				require.Equal(t, w, Weight(n-x, y), "Vertical flip of (%d,%d)", x, y)
				require.Equal(t, w, Weight(x, n-y), "Horizontal flip of (%d,%d)", x, y)
				require.Equal(t, w, Weight(y, x), "Main diagonal reflection of (%d,%d)", x, y)
				require.Equal(t, w, Weight(n-y, n-x), "Anti-diagonal reflection of (%d,%d)", x, y)
			}
		}
	})

	t.Run("corners highest and X-squares lowest", func(t *testing.T) {
		require.Equal(t, 512, Weight(0, 0), "Corner weight")
		require.Equal(t, 2, Weight(1, 1), "X-square weight")
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				require.LessOrEqual(t, Weight(x, y), 512, "No cell beats a corner")
				require.GreaterOrEqual(t, Weight(x, y), 2, "No cell is below an X-square")
			}
		}
	})
}
