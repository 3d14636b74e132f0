// Package jtskconv converts coordinates between WGS-84 latitude/longitude
// and the S-JTSK (Křovák) cadastral grid used in Czechia and Slovakia.
//
// The forward direction goes through a Helmert shift onto the Bessel 1841
// ellipsoid followed by the Křovák oblique conformal conic projection. The
// inverse has no closed form here and is found by a bounded search over the
// forward direction.
//
// Both directions are only defined for WGS-84 positions with latitude in
// [40, 60] and longitude in [5, 25]. WGS84ToJTSK and JTSKToWGS84 return a
// zero value when no result is available; Forward and Inverse report the
// reason as an error instead.
package jtskconv

import "github.com/pspoerri/jtskconv/internal/coord"

// WGS84 is a latitude/longitude pair in degrees.
type WGS84 struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// JTSK is an S-JTSK grid coordinate in meters, with X as the southing and Y
// as the westing.
type JTSK struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	ErrOutsideRegion = coord.ErrOutsideRegion
	ErrNoInput       = coord.ErrNoInput
)

// Projection converts between a CRS and WGS-84 longitude/latitude.
type Projection = coord.Projection

// ForEPSG returns the Projection for EPSG:4326, EPSG:5513 (S-JTSK / Krovak)
// or EPSG:5514 (S-JTSK / Krovak East North), and nil for any other code.
func ForEPSG(code int) Projection {
	return coord.ForEPSG(code)
}

// WGS84ToJTSK converts a WGS-84 position to S-JTSK. It returns {0, 0} for
// positions outside the supported region.
func WGS84ToJTSK(lat, lon float64) JTSK {
	p := coord.WGS84ToJTSK(lat, lon)
	return JTSK{X: p.X, Y: p.Y}
}

// JTSKToWGS84 converts an S-JTSK coordinate to WGS-84. It returns {0, 0}
// when x or y is zero.
func JTSKToWGS84(x, y float64) WGS84 {
	g := coord.JTSKToWGS84(x, y)
	return WGS84{Lat: g.Lat, Lon: g.Lon}
}

// Forward is WGS84ToJTSK with ErrOutsideRegion in place of the zero result.
func Forward(lat, lon float64) (JTSK, error) {
	p, ok := coord.ForwardJTSK(lat, lon)
	if !ok {
		return JTSK{}, ErrOutsideRegion
	}
	return JTSK{X: p.X, Y: p.Y}, nil
}

// Inverse is JTSKToWGS84 with ErrNoInput in place of the zero result.
func Inverse(x, y float64) (WGS84, error) {
	sol, ok := coord.Solver{}.InverseJTSK(x, y)
	if !ok {
		return WGS84{}, ErrNoInput
	}
	return WGS84{Lat: sol.Lat, Lon: sol.Lon}, nil
}
