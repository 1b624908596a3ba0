package progress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	require.InDelta(t, 64.0, Percent(320, 500), 0.0001)
	require.InDelta(t, 120.0, Percent(600, 500), 0.0001)
	require.Zero(t, Percent(10, 0))
	require.Zero(t, Percent(10, -5))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-3, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{164, 100},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Clamp(tt.in), "Clamp(%v)", tt.in)
	}
}

func TestRatio(t *testing.T) {
	require.InDelta(t, 40.0, Ratio(2, 5), 0.0001)
	require.Zero(t, Ratio(0, 0))
}
