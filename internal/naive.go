package internal

import "math"

// Fill the polygon by testing every pixel in its bounding box on its own,
// casting a ray from the pixel to the right and counting edge crossings. This
// is far slower than FillPolygon and exists as a reference to validate it
// against.
//
// A pixel is filled when the crossing count is odd, or when a crossing lands
// on the pixel itself. The second case is a deliberate departure from plain
// ray-crossing parity, which alone would leave the left end of every span
// empty. It mirrors the inclusive spans of the scanline fill, so for any
// polygon inside the board the two agree exactly under CrossingHalfOpen.
func FillNaive(board Board, shape Shape, poly Polygon, rule CrossingRule) {
	board.validate(shape)
	poly.validate()

	box := poly.Bounds()
	first, last := scanRows(box, shape)
	// Rounded crossings can land one column past the truncated bounds.
	left := saturatingIndex(math.Round(box.MinX) - 1)
	right := min(shape.Width-1, saturatingIndex(math.Round(box.MaxX)+1))

	var stats fillStats
	for y := first; y <= last; y++ {
		stats.rows++
		for x := left; x <= right; x++ {
			if containsPixel(poly, float64(x), float64(y), rule) {
				board[x+y*shape.Width] = true
			}
		}
	}
	logFill("naive", poly, Options{Rule: rule}, stats)
}

func containsPixel(poly Polygon, x, y float64, rule CrossingRule) bool {
	count := 0
	for i := range poly.Points {
		a, b := poly.Edge(i)
		s, ok := crossing(a, b, y, rule)
		if !ok || s < x {
			continue
		}
		if s == x {
			return true
		}
		count++
	}
	return count%2 == 1
}
