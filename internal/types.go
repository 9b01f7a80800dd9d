package internal

type Point struct {
	X float64
	Y float64
}

// Vertices are stored by value. Edges are implied by consecutive points, with
// the last point connecting back to the first. Nothing about convexity,
// simplicity or winding is assumed.
type Polygon struct {
	Points []Point
}

// Pixel grid dimensions. Both must be positive for a fill to proceed.
type Shape struct {
	Width, Height int
}

// Row-major pixel buffer, indexed by x + y*Width. Fills only ever set pixels
// to true; they never clear anything.
type Board []bool

type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Decides how a scan row that passes exactly through an edge endpoint is
// counted.
type CrossingRule int

const (
	// Each edge covers the rows [min(y0, y1), max(y0, y1)). A closed polygon
	// always produces an even number of crossings per row, so nothing needs to
	// be deduplicated.
	CrossingHalfOpen CrossingRule = iota
	// Each edge covers its full closed y range, and consecutive equal crossings
	// on a row are collapsed. Three or more edges meeting at one x on a row can
	// produce the wrong parity; this is known and left as is.
	CrossingClosed
)

func (r CrossingRule) String() string {
	switch r {
	case CrossingHalfOpen:
		return "half-open"
	case CrossingClosed:
		return "closed"
	}
	return "unknown"
}

type Options struct {
	Outline bool
	Rule    CrossingRule
}
