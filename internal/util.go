package internal

import "math"

const Tolerance = 1e-6

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Divide by the length. A zero vector yields NaN components; callers filter
// out zero-length edges before normalizing.
func (p Point) Normalize() Point {
	length := p.Length()
	return Point{p.X / length, p.Y / length}
}

func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Convert a float to a non-negative index, clamping negatives to zero and
// truncating the rest.
func saturatingIndex(f float64) int {
	if !(f > 0) {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
