package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"12.5":     12.5,
		"012.50":   12.5,
		"abc12.5x": 12.5,
		"":         0,
		"200 cm":   200,
		"-150":     150,
		"1.2.3":    0,
		".":        0,
		"3,5":      35,
		" 42 ":     42,
	}
	for in, want := range cases {
		require.Equal(t, want, CleanNumber(in), "CleanNumber(%q)", in)
	}
}

func TestAreaM2(t *testing.T) {
	t.Parallel()

	require.Equal(t, 6.0, AreaM2(200, 300))
	require.Equal(t, 2.25, AreaM2(150, 150))
	require.Equal(t, 0.33, AreaM2(333, 10))
	require.Zero(t, AreaM2(0, 300))
	require.Zero(t, AreaM2(200, -1))
}

func TestAreaM2IsSymmetricAndMonotonic(t *testing.T) {
	t.Parallel()

	sizes := []float64{1, 10, 99.5, 150, 200, 333, 1000, 2500}
	for _, l := range sizes {
		for _, w := range sizes {
			require.Equal(t, AreaM2(l, w), AreaM2(w, l))
			require.LessOrEqual(t, AreaM2(l, w), AreaM2(l+1, w))
			require.LessOrEqual(t, AreaM2(l, w), AreaM2(l, w+1))
			require.GreaterOrEqual(t, AreaM2(l, w), 0.0)
		}
	}
}

func TestRound2(t *testing.T) {
	require.Equal(t, 801.0, Round2(8.01*100))
	require.Equal(t, 12.35, Round2(12.345000001))
	require.Equal(t, 0.0, Round2(0.004))
}
