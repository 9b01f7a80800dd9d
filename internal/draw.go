package internal

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/draw"
)

// Half the side of the square drawn around each vertex, in output pixels.
const markerSize = 5.5

// Filled pixels are white, empty ones black.
func (b Board) Image(shape Shape) *image.Gray {
	b.validate(shape)
	img := image.NewGray(image.Rect(0, 0, shape.Width, shape.Height))
	for i, filled := range b {
		if filled {
			img.Pix[i] = 0xff
		}
	}
	return img
}

// Render the board scaled up by an integer factor, with the polygon outline
// and vertex markers drawn on top. Pixel (x, y) of the board covers the
// output square starting at (x*scale, y*scale), and polygon coordinates are
// mapped to pixel centers.
func Render(board Board, shape Shape, poly Polygon, scale int) image.Image {
	poly.validate()
	if scale < 1 {
		scale = 1
	}
	src := board.Image(shape)
	dst := image.NewRGBA(image.Rect(0, 0, shape.Width*scale, shape.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	s := float64(scale)
	toCanvas := func(p Point) (float64, float64) {
		return (p.X + 0.5) * s, (p.Y + 0.5) * s
	}

	c := gg.NewContextForRGBA(dst)
	c.SetLineWidth(1)
	c.MoveTo(toCanvas(poly.Points[0]))
	for _, p := range poly.Points[1:] {
		c.LineTo(toCanvas(p))
	}
	c.ClosePath()
	c.SetColor(color.RGBA{0, 0xff, 0xff, 0xff})
	c.Stroke()

	c.SetColor(color.RGBA{0, 0, 0xff, 0xff})
	for _, p := range poly.Points {
		x, y := toCanvas(p)
		c.DrawRectangle(x-markerSize, y-markerSize, 2*markerSize, 2*markerSize)
		c.Stroke()
	}
	return c.Image()
}

func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// Print a PNG file inline. Only works in terminals that support the iTerm
// image protocol.
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
