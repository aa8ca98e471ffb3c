package gamemath

import "math"

// Slot is a formation anchor: the position an enemy owns while in formation
// and the grid cell it came from. Off-grid slots use Row = Col = -1.
type Slot struct {
	X, Y     float64
	Row, Col int
}

// Point returns the slot's position.
func (s Slot) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// GridSpec describes the canonical formation grid and the near-overlap
// tolerance used when deciding whether a slot is taken.
type GridSpec struct {
	Rows, Cols     int
	StartX, StartY float64
	Spacing        float64
	SlotW, SlotH   float64
	Tolerance      float64
	FallbackX      float64
	FallbackY      float64
}

// Canonical returns the slot at row, col of the original grid.
func (g GridSpec) Canonical(row, col int) Slot {
	return Slot{
		X:   g.StartX + float64(col)*g.Spacing,
		Y:   g.StartY + float64(row)*g.Spacing,
		Row: row,
		Col: col,
	}
}

// NearOverlap reports whether two slots are close enough that enemies
// parked on both would visibly overlap.
func (g GridSpec) NearOverlap(a, b Slot) bool {
	return math.Abs(a.X-b.X) < g.SlotW-g.Tolerance &&
		math.Abs(a.Y-b.Y) < g.SlotH-g.Tolerance
}

// Taken reports whether s near-overlaps any slot in occupied.
func (g GridSpec) Taken(s Slot, occupied []Slot) bool {
	for _, o := range occupied {
		if g.NearOverlap(s, o) {
			return true
		}
	}
	return false
}

// AllocateSlot picks a return target for an enemy whose remembered slot is
// own, given the slots of every other enemy currently in formation. It
// prefers own, then the first free canonical slot in row-major order, and
// finally a fixed off-grid fallback.
func AllocateSlot(own Slot, occupied []Slot, g GridSpec) Slot {
	if !g.Taken(own, occupied) {
		return own
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			s := g.Canonical(row, col)
			if !g.Taken(s, occupied) {
				return s
			}
		}
	}

	return Slot{X: g.FallbackX, Y: g.FallbackY, Row: -1, Col: -1}
}
