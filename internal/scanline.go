package internal

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Statistics gathered during a single fill, used for debug logging.
type fillStats struct {
	rows      int
	crossings int
	discarded int
	unpaired  int
}

// Rasterize the polygon onto the board with the scanline algorithm. For every
// row inside the polygon's bounding box, crossings with all edges are
// collected, sorted, and filled between consecutive pairs (even-odd rule).
// Spans include both ends. In outline mode only the crossing pixels are set.
//
// The board is never cleared: pixels are only ever set to true, so several
// fills can be layered onto one board. Callers wanting a fresh result must
// clear it themselves.
//
// Crossings outside [0, width) are discarded rather than clamped, since a
// clamped crossing would pair with the wrong partner. This also means a
// polygon that crosses the left or right edge of the board loses one crossing
// of a pair on the affected rows: the remaining crossings pair up wrongly and
// those rows come out incomplete or empty. Only polygons whose crossings all
// fall on the board are filled exactly; FillNaive does not discard, so the two
// disagree on such polygons.
func FillPolygon(board Board, shape Shape, poly Polygon, opts Options) {
	board.validate(shape)
	poly.validate()

	first, last := scanRows(poly.Bounds(), shape)
	var stats fillStats
	fillRows(board, shape, poly, opts, first, last, &stats)
	logFill("scanline", poly, opts, stats)
}

func fillRows(board Board, shape Shape, poly Polygon, opts Options, first, last int, stats *fillStats) {
	xs := make([]float64, 0, len(poly.Points))
	for y := first; y <= last; y++ {
		stats.rows++
		xs = xs[:0]
		for i := range poly.Points {
			a, b := poly.Edge(i)
			x, ok := crossing(a, b, float64(y), opts.Rule)
			if !ok {
				continue
			}
			stats.crossings++
			if !(x >= 0 && x < float64(shape.Width)) {
				stats.discarded++
				continue
			}
			if opts.Outline {
				board[int(x)+y*shape.Width] = true
				continue
			}
			if opts.Rule == CrossingClosed && len(xs) > 0 && xs[len(xs)-1] == x {
				continue
			}
			xs = append(xs, x)
		}
		if opts.Outline || len(xs) == 0 {
			continue
		}

		sort.Float64s(xs)
		stats.unpaired += len(xs) % 2
		row := board[y*shape.Width : (y+1)*shape.Width]
		for i := 0; i+1 < len(xs); i += 2 {
			start := saturatingIndex(xs[i])
			end := min(saturatingIndex(xs[i+1]), shape.Width-1)
			for x := start; x <= end; x++ {
				row[x] = true
			}
		}
	}
}

func logFill(algorithm string, poly Polygon, opts Options, stats fillStats) {
	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	logger.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"polygon":   polygonName(poly),
		"points":    len(poly.Points),
		"outline":   opts.Outline,
		"rule":      opts.Rule.String(),
		"rows":      stats.rows,
		"crossings": stats.crossings,
		"discarded": stats.discarded,
		"unpaired":  stats.unpaired,
	}).Debug("filled polygon")
}
