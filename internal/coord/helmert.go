package coord

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Helmert is a seven-parameter similarity transform between two geocentric
// frames in the small-angle (Bursa-Wolf) form. Rotations are in radians and
// M is the scale difference as a plain ratio.
type Helmert struct {
	DX, DY, DZ float64
	RX, RY, RZ float64
	M          float64
}

// WGS84ToBesselShift moves WGS-84 geocentric coordinates into the S-JTSK
// (Bessel 1841) frame. Rotations are published in arc seconds.
var WGS84ToBesselShift = Helmert{
	DX: -570.69,
	DY: -85.69,
	DZ: -462.84,
	RX: 4.99821 / 3600 * math.Pi / 180,
	RY: 1.58676 / 3600 * math.Pi / 180,
	RZ: 5.2611 / 3600 * math.Pi / 180,
	M:  -3.543e-6,
}

// Apply returns v shifted, rotated and scaled by h.
func (h Helmert) Apply(v r3.Vec) r3.Vec {
	rotated := r3.Vec{
		X: +v.X + h.RZ*v.Y - h.RY*v.Z,
		Y: -h.RZ*v.X + v.Y + h.RX*v.Z,
		Z: +h.RY*v.X - h.RX*v.Y + v.Z,
	}
	return r3.Add(r3.Vec{X: h.DX, Y: h.DY, Z: h.DZ}, r3.Scale(1+h.M, rotated))
}
