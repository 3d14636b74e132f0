package coord

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// distEpsilon is the distance below which two grid points are equal.
	distEpsilon = 1.0e-4
	// unreachable is the distance assigned to corners outside Region.
	unreachable = 1.0e32

	solverStartLat   = 49.0
	solverStartLon   = 14.0
	solverStartDelta = 5.0
	solverShrink     = 0.55
	solverMinDelta   = 1.0e-5
	solverMaxSteps   = 1000
)

// corners lists the search directions as (lat sign, lon sign).
var corners = [4][2]float64{
	{-1, -1},
	{-1, +1},
	{+1, -1},
	{+1, +1},
}

// Iteration describes one round of the inverse search, before the estimate
// is moved.
type Iteration struct {
	Steps    int // forward conversions performed before this round
	Lat, Lon float64
	Delta    float64
	// Dist holds the grid distance from each corner to the target, in the
	// order of corners. Corners outside Region hold 1e32.
	Dist [4]float64
}

// Best returns the smallest corner distance of the round.
func (it Iteration) Best() float64 {
	best := it.Dist[0]
	for _, d := range it.Dist[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

// Solution is the outcome of an inverse search.
type Solution struct {
	Lat, Lon   float64
	Iterations int
	Steps      int
	// Delta is the search radius left when the loop stopped.
	Delta float64
	// Residual is the grid distance between the forward projection of
	// (Lat, Lon) and the target. It is informational only.
	Residual float64
}

// Solver inverts the forward chain by quadrant-halving search. The zero
// value is ready to use.
type Solver struct {
	// Observe, if set, is called once per round.
	Observe func(Iteration)
}

// InverseJTSK searches for the WGS-84 latitude/longitude whose forward
// projection is (x, y). ok is false, and no search is done, when x or y is
// zero. The result is the estimate left when the search radius drops below
// 1e-5 degrees; convergence onto the target is not verified.
func (s Solver) InverseJTSK(x, y float64) (sol Solution, ok bool) {
	if x == 0 || y == 0 {
		return Solution{}, false
	}
	target := orb.Point{x, y}

	lat, lon := solverStartLat, solverStartLon
	delta := solverStartDelta
	steps := 0
	iterations := 0

	for {
		it := Iteration{Steps: steps, Lat: lat, Lon: lon, Delta: delta}
		for i, c := range corners {
			it.Dist[i] = cornerDist(lat+c[0]*delta, lon+c[1]*delta, target)
		}
		if s.Observe != nil {
			s.Observe(it)
		}

		lat, lon = quadrantMove(lat, lon, delta, it.Dist)
		delta *= solverShrink
		steps += len(corners)
		iterations++

		if delta < solverMinDelta || steps > solverMaxSteps {
			break
		}
	}

	return Solution{
		Lat:        lat,
		Lon:        lon,
		Iterations: iterations,
		Steps:      steps,
		Delta:      delta,
		Residual:   cornerDist(lat, lon, target),
	}, true
}

// JTSKToWGS84 runs the inverse search with a zero Solver and folds the
// failure case into a {0,0} result.
func JTSKToWGS84(x, y float64) Geodetic {
	sol, ok := Solver{}.InverseJTSK(x, y)
	if !ok {
		return Geodetic{}
	}
	return Geodetic{Lat: sol.Lat, Lon: sol.Lon}
}

func cornerDist(lat, lon float64, target orb.Point) float64 {
	p, ok := ForwardJTSK(lat, lon)
	if !ok {
		return unreachable
	}
	return distPoints(p.Point(), target)
}

// quadrantMove moves (lat, lon) half a delta towards the nearest corner. A
// corner wins when it is no farther than any other; ties are not broken and
// every winning corner contributes its own move.
func quadrantMove(lat, lon, delta float64, dist [4]float64) (float64, float64) {
	half := delta / 2.0
	for i, c := range corners {
		if isNearest(dist, i) {
			lat += c[0] * half
			lon += c[1] * half
		}
	}
	return lat, lon
}

func isNearest(dist [4]float64, i int) bool {
	for j, d := range dist {
		if j != i && dist[i] > d {
			return false
		}
	}
	return true
}

// distPoints is the planar distance between a and b, snapped to 0 below
// distEpsilon so that near-equal corners compare as ties.
func distPoints(a, b orb.Point) float64 {
	d := planar.Distance(a, b)
	if d < distEpsilon {
		return 0
	}
	return d
}
