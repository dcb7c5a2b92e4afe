package menu

import "math"

// falseStops is Turing's expected number of false stops per wheel order for a
// menu with a given number of links and no closures.
var falseStops = [...]float64{
	10000000, 1600000, 800000, 450000, 300000, 180000, 120000, 70000, 40000, 19000,
	7300, 2700, 820, 200, 43, 7.3, 1.0, 0.125, 0.015,
}

// MinScore is the floor every score is clamped to.
const MinScore = 0.001

// Score returns the Turing score for the given closure and link counts. Each
// closure divides the table value by 26.
func Score(closures, links int) float64 {
	s := MinScore
	if links >= 0 && links < len(falseStops) {
		s = falseStops[links]
	}
	if closures > 0 {
		s /= math.Pow(26, float64(closures))
	}

	return math.Max(s, MinScore)
}
