package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestHelmert_Zero(t *testing.T) {
	v := r3.Vec{X: 3978807.98, Y: 1021584.25, Z: 4862789.03}
	require.Equal(t, v, Helmert{}.Apply(v))
}

func TestHelmert_TranslationOnly(t *testing.T) {
	h := Helmert{DX: 1, DY: -2, DZ: 3}
	got := h.Apply(r3.Vec{X: 10, Y: 20, Z: 30})
	require.Equal(t, r3.Vec{X: 11, Y: 18, Z: 33}, got)
}

func TestHelmert_WGS84ToBessel(t *testing.T) {
	in := r3.Vec{X: 3978807.986947858, Y: 1021584.2573307737, Z: 4862789.037706433}
	want := r3.Vec{X: 3978211.8485362334, Y: 1021511.2973368937, Z: 4862314.822080114}

	got := WGS84ToBesselShift.Apply(in)
	require.InDelta(t, want.X, got.X, 1e-6)
	require.InDelta(t, want.Y, got.Y, 1e-6)
	require.InDelta(t, want.Z, got.Z, 1e-6)
}

func TestHelmert_RotationUnits(t *testing.T) {
	// 5.2611 arc seconds about Z.
	require.InDelta(t, 2.550653e-5, WGS84ToBesselShift.RZ, 1e-11)
	require.InDelta(t, 5.2611, WGS84ToBesselShift.RZ*180/math.Pi*3600, 1e-12)
}
