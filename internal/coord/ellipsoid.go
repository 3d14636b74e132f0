package coord

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ellipsoid is a reference ellipsoid given by its semi-major axis (meters)
// and inverse flattening.
type Ellipsoid struct {
	A    float64
	InvF float64
}

var (
	// WGS84 is the GPS reference ellipsoid.
	WGS84 = Ellipsoid{A: 6378137.0, InvF: 298.257223563}
	// Bessel1841 is the ellipsoid S-JTSK is defined on.
	Bessel1841 = Ellipsoid{A: 6377397.15508, InvF: 299.152812853}
)

// Geodetic is a latitude/longitude pair in degrees with an ellipsoidal
// height in meters.
type Geodetic struct {
	Lat    float64
	Lon    float64
	Height float64
}

// E2 returns the squared first eccentricity.
func (el Ellipsoid) E2() float64 {
	return 1 - math.Pow(1-1/el.InvF, 2)
}

// AxisRatio returns a/b, the ratio of the semi-major to the semi-minor axis.
func (el Ellipsoid) AxisRatio() float64 {
	return el.InvF / (el.InvF - 1)
}

// ToGeocentric converts geodetic coordinates on el to Earth-centered
// Cartesian coordinates in meters.
func (el Ellipsoid) ToGeocentric(g Geodetic) r3.Vec {
	b := g.Lat * math.Pi / 180.0
	l := g.Lon * math.Pi / 180.0
	h := g.Height

	e2 := el.E2()
	nu := el.A / math.Sqrt(1-e2*math.Pow(math.Sin(b), 2))

	return r3.Vec{
		X: (nu + h) * math.Cos(b) * math.Cos(l),
		Y: (nu + h) * math.Cos(b) * math.Sin(l),
		Z: ((1-e2)*nu + h) * math.Sin(b),
	}
}

// FromGeocentric converts Earth-centered Cartesian coordinates to geodetic
// coordinates on el using Bowring's closed-form approximation. The latitude
// comes out of a single correction step and is never refined further.
//
// Points with p+X == 0 (on the negative X axis) divide by zero.
func (el Ellipsoid) FromGeocentric(v r3.Vec) Geodetic {
	a := el.A
	ab := el.AxisRatio()
	e2 := el.E2()

	p := math.Sqrt(math.Pow(v.X, 2) + math.Pow(v.Y, 2))
	th := math.Atan(v.Z * ab / p)
	st := math.Sin(th)
	ct := math.Cos(th)
	t := (v.Z + e2*ab*a*math.Pow(st, 3)) / (p - e2*a*math.Pow(ct, 3))

	b := math.Atan(t)
	h := math.Sqrt(1+t*t) * (p - a/math.Sqrt(1+(1-e2)*t*t))
	l := 2.0 * math.Atan(v.Y/(p+v.X))

	return Geodetic{
		Lat:    b * 180.0 / math.Pi,
		Lon:    l * 180.0 / math.Pi,
		Height: h,
	}
}
