package internal

import "math"

// Find where edge a->b crosses the horizontal line through row y, rounded to
// the nearest pixel column. The edge is parametrized by distance t along its
// normalized direction, and the crossing must fall within [0, |b-a|].
//
// Horizontal edges never cross a row at a single point, so they report no
// crossing. Under CrossingHalfOpen the range test is done on y directly, with
// the endpoint with the larger y excluded, so that a vertex shared by two edges is counted
// exactly once when the boundary passes through it and zero or two times when
// it is a local extremum.
//
// Edges too long for float64 arithmetic can produce a NaN or infinite
// column; those report no crossing.
func crossing(a, b Point, y float64, rule CrossingRule) (float64, bool) {
	d := b.Sub(a)
	if d.Y == 0 {
		return 0, false
	}
	n := d.Normalize()
	switch rule {
	case CrossingHalfOpen:
		if y < math.Min(a.Y, b.Y) || y >= math.Max(a.Y, b.Y) {
			return 0, false
		}
	default:
		t := (y - a.Y) / n.Y
		if t < 0 || d.Length() < t {
			return 0, false
		}
	}
	x := math.Round((y-a.Y)*n.X/n.Y + a.X)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// First and last scan rows the polygon can touch, clamped to the board.
// last < first when nothing is visible.
func scanRows(box BBox, shape Shape) (first, last int) {
	first = saturatingIndex(box.MinY)
	if box.MaxY < 0 {
		return first, -1
	}
	last = min(shape.Height-1, saturatingIndex(math.Floor(box.MaxY)))
	return first, last
}
