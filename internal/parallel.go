package internal

import (
	"runtime"
	"sync"
)

// Same result as FillPolygon, with the scan rows split into contiguous bands
// that are filled concurrently. Rows are independent and every band writes
// only to its own rows, so no locking is needed. workers <= 0 means one per
// CPU.
func FillParallel(board Board, shape Shape, poly Polygon, opts Options, workers int) {
	board.validate(shape)
	poly.validate()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	first, last := scanRows(poly.Bounds(), shape)
	rows := last - first + 1
	if rows <= 0 {
		return
	}
	workers = min(workers, rows)
	bandSize := (rows + workers - 1) / workers

	stats := make([]fillStats, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		bandFirst := first + w*bandSize
		bandLast := min(last, bandFirst+bandSize-1)
		if bandFirst > bandLast {
			break
		}
		wg.Add(1)
		go func(w, bandFirst, bandLast int) {
			defer wg.Done()
			fillRows(board, shape, poly, opts, bandFirst, bandLast, &stats[w])
		}(w, bandFirst, bandLast)
	}
	wg.Wait()

	var total fillStats
	for _, s := range stats {
		total.rows += s.rows
		total.crossings += s.crossings
		total.discarded += s.discarded
		total.unpaired += s.unpaired
	}
	logFill("parallel", poly, opts, total)
}
