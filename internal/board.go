package internal

func NewBoard(shape Shape) Board {
	shape.validate()
	return make(Board, shape.Width*shape.Height)
}

// Reset every pixel. Fills never do this on their own.
func (b Board) Clear() {
	for i := range b {
		b[i] = false
	}
}

func (b Board) Get(shape Shape, x, y int) bool {
	if x < 0 || y < 0 || x >= shape.Width || y >= shape.Height {
		return false
	}
	return b[x+y*shape.Width]
}

func (b Board) Count() int {
	count := 0
	for _, filled := range b {
		if filled {
			count++
		}
	}
	return count
}

// A maximal horizontal run of filled pixels, inclusive on both ends.
type Run struct {
	Start, End int
}

func (b Board) Runs(shape Shape, y int) []Run {
	var runs []Run
	if y < 0 || y >= shape.Height {
		return runs
	}
	row := b[y*shape.Width : (y+1)*shape.Width]
	for x := 0; x < len(row); x++ {
		if !row[x] {
			continue
		}
		start := x
		for x+1 < len(row) && row[x+1] {
			x++
		}
		runs = append(runs, Run{start, x})
	}
	return runs
}

func (shape Shape) validate() {
	if shape.Width <= 0 || shape.Height <= 0 {
		fatalf("invalid board shape %dx%d", shape.Width, shape.Height)
	}
}

func (b Board) validate(shape Shape) {
	shape.validate()
	if len(b) != shape.Width*shape.Height {
		fatalf("board has %d pixels, shape %dx%d needs %d", len(b), shape.Width, shape.Height, shape.Width*shape.Height)
	}
}
