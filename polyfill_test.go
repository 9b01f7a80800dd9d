package polyfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestFill(t *testing.T) {
	shape := Shape{Width: 64, Height: 35}
	tri := NewTriangle(Point{X: 30, Y: 5}, Point{X: 10, Y: 20}, Point{X: 50, Y: 30})

	board, err := NewBoard(shape)
	require.NoError(t, err)
	require.NoError(t, Fill(board, shape, tri, false))
	filled := board.Count()
	assert.NotZero(t, filled)

	outline, _ := NewBoard(shape)
	require.NoError(t, Fill(outline, shape, tri, true))
	assert.Less(t, outline.Count(), filled)

	naive, _ := NewBoard(shape)
	require.NoError(t, FillNaive(naive, shape, tri))
	assert.Equal(t, board, naive)
}

func TestFill_TooFewPoints(t *testing.T) {
	shape := Shape{Width: 8, Height: 8}
	board, _ := NewBoard(shape)
	err := Fill(board, shape, NewPolygon(Point{X: 1, Y: 1}, Point{X: 2, Y: 2}), false)
	assert.EqualError(t, err, "polygon needs at least 3 points, got 2")
}

func TestScale(t *testing.T) {
	poly := NewPolygon(Point{X: 1, Y: 2}, Point{X: 3, Y: 4}, Point{X: 5, Y: 0})
	Scale(&poly, 8)
	assert.Equal(t, []Point{{X: 8, Y: 16}, {X: 24, Y: 32}, {X: 40, Y: 0}}, poly.Points)
}

func TestMeasureTime(t *testing.T) {
	s, seconds := MeasureTime(func() string { return "ok" })
	assert.Equal(t, "ok", s)
	assert.GreaterOrEqual(t, seconds, 0.0)
}
