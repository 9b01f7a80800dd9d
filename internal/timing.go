package internal

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Run f and report its result along with the elapsed wall-clock time in
// seconds.
func MeasureTime[T any](f func() T) (T, float64) {
	start := time.Now()
	ret := f()
	return ret, time.Since(start).Seconds()
}

// Result of running both fills on the same input.
type Comparison struct {
	ScanlineSeconds float64
	NaiveSeconds    float64
	Scanline        Board
	Naive           Board
	// Pixels filled by exactly one of the two algorithms.
	Mismatches []Pixel
}

type Pixel struct {
	X, Y int
}

func (c Comparison) Agree() bool {
	return len(c.Mismatches) == 0
}

// Fill the polygon with both algorithms on fresh boards and time them.
func Compare(shape Shape, poly Polygon, rule CrossingRule) Comparison {
	var c Comparison
	c.Scanline, c.ScanlineSeconds = MeasureTime(func() Board {
		board := NewBoard(shape)
		FillPolygon(board, shape, poly, Options{Rule: rule})
		return board
	})
	c.Naive, c.NaiveSeconds = MeasureTime(func() Board {
		board := NewBoard(shape)
		FillNaive(board, shape, poly, rule)
		return board
	})
	for i := range c.Scanline {
		if c.Scanline[i] != c.Naive[i] {
			c.Mismatches = append(c.Mismatches, Pixel{i % shape.Width, i / shape.Width})
		}
	}
	if !logger.IsLevelEnabled(logrus.InfoLevel) {
		return c
	}
	logger.WithFields(logrus.Fields{
		"polygon":    polygonName(poly),
		"scanlineMs": c.ScanlineSeconds * 1e3,
		"naiveMs":    c.NaiveSeconds * 1e3,
		"mismatches": len(c.Mismatches),
	}).Info("compared fills")
	return c
}
