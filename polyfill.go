// Rasterize closed polygons onto a boolean pixel grid.
//
// Fill uses a scanline algorithm: for each pixel row it finds where the edges
// cross the row, sorts the crossings, and fills between consecutive pairs
// (even-odd rule). FillNaive tests every pixel on its own by ray casting and
// is provided as a slow reference to validate Fill against.
//
// Boards are never cleared by a fill. Pixels are only ever set, so an outline
// and a fill can be composed on one board; clear the board yourself between
// fills when you want a fresh result. See the advanced package for crossing
// rules, parallel fills, rendering and loaders.
package polyfill

import (
	"github.com/osuushi/polyfill/advanced"
	"github.com/osuushi/polyfill/internal"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Shape = advanced.Shape
type Board = advanced.Board

func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: points}
}

func NewTriangle(a, b, c Point) Polygon {
	return internal.NewTriangle(a, b, c)
}

// Allocate an empty board for the shape. Both dimensions must be positive.
func NewBoard(shape Shape) (Board, error) {
	return advanced.NewBoard(shape)
}

// Mark the pixels inside the polygon, or only those on its edges when outline
// is set. The board must have exactly Width*Height pixels. It is not cleared
// first.
//
// The polygon needs at least 3 vertices with finite coordinates; anything
// else is reported as a GeometryError. Pixels outside the board are never
// written.
func Fill(board Board, shape Shape, poly Polygon, outline bool) error {
	return advanced.FillWith(board, shape, poly, advanced.Options{Outline: outline})
}

// Same contract as Fill without an outline mode, computed pixel by pixel.
func FillNaive(board Board, shape Shape, poly Polygon) error {
	return advanced.FillNaiveWith(board, shape, poly, advanced.CrossingHalfOpen)
}

// Multiply every vertex coordinate by factor, in place.
func Scale(poly *Polygon, factor float64) {
	poly.Scale(factor)
}

// Run f and return its result along with the elapsed wall-clock seconds.
func MeasureTime[T any](f func() T) (T, float64) {
	return advanced.MeasureTime(f)
}
