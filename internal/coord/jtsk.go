package coord

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrOutsideRegion is reported for WGS-84 input outside Region.
	ErrOutsideRegion = errors.New("coord: position outside the S-JTSK region")
	// ErrNoInput is reported for a JTSK coordinate with a zero component.
	ErrNoInput = errors.New("coord: JTSK coordinate has a zero component")
)

// Region is the WGS-84 lon/lat box the forward conversion is defined for.
// Both edges are inclusive.
var Region = orb.Bound{
	Min: orb.Point{5, 40},
	Max: orb.Point{25, 60},
}

// Point returns p as an orb point (X, Y).
func (p Planar) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

// IsZero reports whether p is the {0,0} "no coordinate" value.
func (p Planar) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// EastNorth returns p in the EPSG:5514 axis order, where easting is -Y and
// northing is -X.
func (p Planar) EastNorth() (easting, northing float64) {
	return -p.Y, -p.X
}

// PlanarFromEastNorth is the inverse of Planar.EastNorth.
func PlanarFromEastNorth(easting, northing float64) Planar {
	return Planar{X: -northing, Y: -easting}
}

// InRegion reports whether a WGS-84 latitude/longitude lies inside Region.
func InRegion(lat, lon float64) bool {
	return Region.Contains(orb.Point{lon, lat})
}

// WGS84ToBessel rebases a WGS-84 geodetic position onto the Bessel 1841
// ellipsoid through the geocentric Helmert shift.
func WGS84ToBessel(g Geodetic) Geodetic {
	v := WGS84.ToGeocentric(g)
	v = WGS84ToBesselShift.Apply(v)
	return Bessel1841.FromGeocentric(v)
}

// ForwardJTSK converts a WGS-84 latitude/longitude to S-JTSK. ok is false
// when the position lies outside Region; nothing is computed in that case.
func ForwardJTSK(lat, lon float64) (p Planar, ok bool) {
	if !InRegion(lat, lon) {
		return Planar{}, false
	}
	b := WGS84ToBessel(Geodetic{Lat: lat, Lon: lon})
	return BesselToJTSK(b), true
}

// WGS84ToJTSK is ForwardJTSK with the failure folded into a {0,0} result.
func WGS84ToJTSK(lat, lon float64) Planar {
	p, _ := ForwardJTSK(lat, lon)
	return p
}
