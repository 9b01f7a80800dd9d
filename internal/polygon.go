package internal

import "math"

func NewTriangle(a, b, c Point) Polygon {
	return Polygon{Points: []Point{a, b, c}}
}

// Edge i runs from vertex i to vertex i+1, wrapping to the first vertex.
func (poly Polygon) Edge(i int) (Point, Point) {
	n := len(poly.Points)
	return poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]
}

func (poly Polygon) Bounds() BBox {
	box := BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, p := range poly.Points {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box
}

// Multiply every coordinate by factor, in place.
func (poly *Polygon) Scale(factor float64) {
	for i := range poly.Points {
		poly.Points[i] = poly.Points[i].Scale(factor)
	}
}

// Replace a single vertex. Used by interactive editors while dragging.
func (poly *Polygon) MoveVertex(i int, p Point) {
	if i < 0 || i >= len(poly.Points) {
		fatalf("vertex index %d out of range for polygon with %d points", i, len(poly.Points))
	}
	poly.Points[i] = p
}

// Find the first vertex within radius of p. This is what a front-end uses to
// decide which vertex a click grabs.
func (poly Polygon) PickVertex(p Point, radius float64) (int, bool) {
	for i, v := range poly.Points {
		if v.Sub(p).Length() < radius {
			return i, true
		}
	}
	return -1, false
}

// Shoelace area, positive regardless of winding.
func (poly Polygon) Area() float64 {
	var sum float64
	for i := range poly.Points {
		a, b := poly.Edge(i)
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

func (poly Polygon) validate() {
	if len(poly.Points) < 3 {
		fatalf("polygon needs at least 3 points, got %d", len(poly.Points))
	}
	for i, p := range poly.Points {
		if !p.IsFinite() {
			fatalf("vertex %d has non-finite coordinates (%v, %v)", i, p.X, p.Y)
		}
	}
}
