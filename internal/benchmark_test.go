package internal

import "testing"

func benchmarkFill(b *testing.B, fill func(Board, Shape, Polygon)) {
	star, _ := Preset("star")
	star.Scale(512.0 / 64)
	shape := Shape{512, 512}
	board := NewBoard(shape)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Clear()
		fill(board, shape, star)
	}
}

func BenchmarkFillPolygon(b *testing.B) {
	benchmarkFill(b, func(board Board, shape Shape, poly Polygon) {
		FillPolygon(board, shape, poly, Options{})
	})
}

func BenchmarkFillParallel(b *testing.B) {
	benchmarkFill(b, func(board Board, shape Shape, poly Polygon) {
		FillParallel(board, shape, poly, Options{}, 0)
	})
}

func BenchmarkFillNaive(b *testing.B) {
	benchmarkFill(b, func(board Board, shape Shape, poly Polygon) {
		FillNaive(board, shape, poly, CrossingHalfOpen)
	})
}
