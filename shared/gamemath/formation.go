package gamemath

import "math"

// Bounds is the horizontal extent of the formation.
type Bounds struct {
	Left, Right float64
}

// FormationBounds returns the leftmost x and rightmost x+w over rects. An empty
// formation yields {screenWidth, 0} so that it never reads as touching an edge.
func FormationBounds(rects []Rect, screenWidth float64) Bounds {
	b := Bounds{Left: screenWidth, Right: 0}
	for _, r := range rects {
		if r.X < b.Left {
			b.Left = r.X
		}
		if r.X+r.W > b.Right {
			b.Right = r.X + r.W
		}
	}
	return b
}

// TouchesEdge reports whether the formation has reached the screen edge in
// its direction of travel.
func (b Bounds) TouchesEdge(dir, screenWidth float64) bool {
	return (b.Left <= 0 && dir < 0) || (b.Right >= screenWidth && dir > 0)
}

// DeadFraction is the share of the original formation that is no longer in
// formation (destroyed or away on a swoop).
func DeadFraction(total, aliveFormation int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(total-aliveFormation) / float64(total)
}

// MoveDelay returns the number of ticks between formation steps.
func MoveDelay(base, floor, perDead float64, dead int) float64 {
	return math.Max(floor, base-perDead*float64(dead))
}

// FormationSpeed returns base * (1 + deadFactor*deadFraction) * (1 + levelFactor*level).
func FormationSpeed(base float64, total, aliveFormation, level int, deadFactor, levelFactor float64) float64 {
	if total <= 0 {
		return base
	}
	return base * (1 + deadFactor*DeadFraction(total, aliveFormation)) * (1 + levelFactor*float64(level))
}

// SwoopChance scales the per-tick swoop probability by archetype and by how
// thin the formation has become.
func SwoopChance(chance, archetypeMult, deadFraction float64) float64 {
	return chance * archetypeMult * (1 + deadFraction)
}

// ShootChance scales the per-tick fire probability of a formation enemy.
func ShootChance(chance, archetypeMult, levelFactor float64, level int) float64 {
	return chance * archetypeMult * (1 + levelFactor*float64(level))
}
