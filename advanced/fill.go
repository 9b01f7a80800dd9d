// Package advanced exposes the full fill API: crossing rules, parallel and
// reference fills, comparison, rendering and polygon loading.
package advanced

import (
	"image"
	"io"

	"github.com/osuushi/polyfill/internal"
	"github.com/sirupsen/logrus"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Shape = internal.Shape
type Board = internal.Board
type BBox = internal.BBox
type Run = internal.Run
type Pixel = internal.Pixel
type Options = internal.Options
type CrossingRule = internal.CrossingRule
type Comparison = internal.Comparison
type GeometryError = internal.GeometryError

const (
	CrossingHalfOpen = internal.CrossingHalfOpen
	CrossingClosed   = internal.CrossingClosed
)

var PresetShape = internal.PresetShape

// Fill the polygon onto the board with the scanline algorithm. The board is
// only ever added to, never cleared.
func FillWith(board Board, shape Shape, poly Polygon, opts Options) (err error) {
	defer recoverInto(&err)
	internal.FillPolygon(board, shape, poly, opts)
	return nil
}

// Like FillWith, with rows split across workers goroutines. workers <= 0
// uses one per CPU.
func FillParallel(board Board, shape Shape, poly Polygon, opts Options, workers int) (err error) {
	defer recoverInto(&err)
	internal.FillParallel(board, shape, poly, opts, workers)
	return nil
}

// Reference fill, testing each pixel independently. There is no outline mode.
func FillNaiveWith(board Board, shape Shape, poly Polygon, rule CrossingRule) (err error) {
	defer recoverInto(&err)
	internal.FillNaive(board, shape, poly, rule)
	return nil
}

// Run both fills on fresh boards and report timings and disagreements.
func Compare(shape Shape, poly Polygon, rule CrossingRule) (result Comparison, err error) {
	defer recoverInto(&err)
	return internal.Compare(shape, poly, rule), nil
}

func MeasureTime[T any](f func() T) (T, float64) {
	return internal.MeasureTime(f)
}

func NewBoard(shape Shape) (board Board, err error) {
	defer recoverInto(&err)
	return internal.NewBoard(shape), nil
}

func MoveVertex(poly *Polygon, i int, p Point) (err error) {
	defer recoverInto(&err)
	poly.MoveVertex(i, p)
	return nil
}

func Render(board Board, shape Shape, poly Polygon, scale int) (img image.Image, err error) {
	defer recoverInto(&err)
	return internal.Render(board, shape, poly, scale), nil
}

func SavePNG(path string, img image.Image) error {
	return internal.SavePNG(path, img)
}

func CatPNG(path string, w io.Writer) {
	internal.CatPNG(path, w)
}

func PrintBoard(w io.Writer, board Board, shape Shape, colors bool) (err error) {
	defer recoverInto(&err)
	return internal.PrintBoard(w, board, shape, colors)
}

func LoadSVG(r io.Reader) (Polygon, error) {
	return internal.LoadSVG(r)
}

func LoadYAML(r io.Reader) (Polygon, error) {
	return internal.LoadYAML(r)
}

func Preset(name string) (Polygon, bool) {
	return internal.Preset(name)
}

func PresetNames() []string {
	return internal.PresetNames()
}

func IsGeometryError(err error) bool {
	return internal.IsGeometryError(err)
}

// Install a logger for fill diagnostics. By default nothing is logged.
func SetLogger(l *logrus.Logger) {
	internal.SetLogger(l)
}

func recoverInto(err *error) {
	if recoveredErr := internal.HandleFillPanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
