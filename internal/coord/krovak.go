package coord

import "math"

// Oblique conformal conic constants for S-JTSK on the Bessel 1841 ellipsoid.
// All values are pre-derived; nothing here is recomputed at runtime.
const (
	krovakE     = 0.081696831215303 // first eccentricity of Bessel 1841
	krovakN     = 0.97992470462083  // cone constant
	krovakRho0  = 12310230.12797036 // radius of the standard parallel
	krovakSinUQ = 0.863499969506341 // cartographic pole latitude
	krovakCosUQ = 0.504348889819882
	krovakSinVQ = 0.420215144586493 // cartographic pole longitude
	krovakCosVQ = 0.907424504992097
	krovakAlpha = 1.000597498371542
	krovakK2    = 1.00685001861538
)

// Planar is an S-JTSK grid coordinate in meters. X grows southwards and Y
// westwards, so the whole country has positive X > Y.
type Planar struct {
	X, Y float64
}

// BesselToJTSK projects a latitude/longitude on the Bessel 1841 ellipsoid
// onto the S-JTSK plane. Inputs are expected inside ±90°/±180°; there are no
// domain checks.
func BesselToJTSK(g Geodetic) Planar {
	b := g.Lat * math.Pi / 180.0
	l := g.Lon * math.Pi / 180.0

	// Gaussian conformal sphere.
	sinB := math.Sin(b)
	t := (1 - krovakE*sinB) / (1 + krovakE*sinB)
	t = math.Pow(1+sinB, 2) / (1 - math.Pow(sinB, 2)) * math.Exp(krovakE*math.Log(t))
	t = krovakK2 * math.Exp(krovakAlpha*math.Log(t))

	sinU := (t - 1) / (t + 1)
	cosU := math.Sqrt(1 - sinU*sinU)
	v := krovakAlpha * l
	sinV := math.Sin(v)
	cosV := math.Cos(v)

	// Rotate onto the cartographic pole.
	cosDV := krovakCosVQ*cosV + krovakSinVQ*sinV
	sinDV := krovakSinVQ*cosV - krovakCosVQ*sinV
	sinS := krovakSinUQ*sinU + krovakCosUQ*cosU*cosDV
	cosS := math.Sqrt(1 - sinS*sinS)
	sinD := sinDV * cosU / cosS
	cosD := math.Sqrt(1 - sinD*sinD)

	eps := krovakN * math.Atan(sinD/cosD)
	rho := krovakRho0 * math.Exp(-krovakN*math.Log((1+sinS)/cosS))

	return Planar{X: rho * math.Cos(eps), Y: rho * math.Sin(eps)}
}
