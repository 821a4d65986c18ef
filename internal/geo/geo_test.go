package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты чистых геометрических функций:
//  - симметричность и нулевое расстояние до самой себя;
//  - опорное расстояние (1° долготы на экваторе ≈ 111.19 км);
//  - пороговые случаи форматирования (999 м / 1000 м / 2500 м).

// TestDistanceKm_Symmetry — d(A,B) == d(B,A).
func TestDistanceKm_Symmetry(t *testing.T) {
	t.Parallel()

	points := [][4]float64{
		{0.4162, 9.4673, 48.8566, 2.3522},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{0, 0, 0, 1},
	}

	for _, p := range points {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		require.InDelta(t, ab, ba, 1e-9)
		require.GreaterOrEqual(t, ab, 0.0)
	}
}

// TestDistanceKm_Zero — d(A,A) == 0.
func TestDistanceKm_Zero(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.0, DistanceKm(0.4162, 9.4673, 0.4162, 9.4673), 1e-9)
}

// TestDistanceKm_Reference — 1° долготы на экваторе ≈ 111.19 км
// (2*pi*6371/360).
func TestDistanceKm_Reference(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 111.19, DistanceKm(0, 0, 0, 1), 0.05)
}

// TestDistanceM — метры согласованы с километрами.
func TestDistanceM(t *testing.T) {
	t.Parallel()

	km := DistanceKm(0, 0, 0, 1)
	require.InDelta(t, km*1000, DistanceM(0, 0, 0, 1), 1e-6)
}

// TestFormatDistance — пороговые случаи форматирования.
func TestFormatDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		meters float64
		want   string
	}{
		{0, "0 m"},
		{449.6, "450 m"},
		{999, "999 m"},
		{1000, "1.0 km"},
		{2500, "2.5 km"},
		{50000, "50.0 km"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatDistance(tc.meters), "meters=%v", tc.meters)
	}
}
