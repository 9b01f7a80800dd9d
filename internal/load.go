package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Read the first <polygon> element of an SVG document. This is not a full SVG
// reader: transforms, paths and every other element are ignored.
func LoadSVG(r io.Reader) (Polygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return Polygon{}, errors.Wrap(err, "parsing svg")
	}
	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return Polygon{}, errors.New("no polygon element in svg")
	}
	return parsePoints(elements[0].Attributes["points"])
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x, y pairs.
func parsePoints(s string) (Polygon, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return Polygon{}, errors.Errorf("odd number of coordinates (%d) in points %q", len(fields), s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return checkLoaded(Polygon{Points: points})
}

type yamlPolygon struct {
	Vertices [][]float64 `yaml:"vertices"`
}

// Read a polygon from YAML of the form
//
//	vertices:
//	  - [30, 5]
//	  - [10, 20]
//	  - [50, 30]
func LoadYAML(r io.Reader) (Polygon, error) {
	var doc yamlPolygon
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Polygon{}, errors.Wrap(err, "parsing yaml")
	}
	points := make([]Point, 0, len(doc.Vertices))
	for i, v := range doc.Vertices {
		if len(v) != 2 {
			return Polygon{}, errors.Errorf("vertex %d has %d coordinates, want 2", i, len(v))
		}
		points = append(points, Point{v[0], v[1]})
	}
	return checkLoaded(Polygon{Points: points})
}

func checkLoaded(poly Polygon) (result Polygon, err error) {
	defer func() {
		if recoveredErr := HandleFillPanicRecover(recover()); recoveredErr != nil {
			result = Polygon{}
			err = recoveredErr
		}
	}()
	poly.validate()
	return poly, nil
}
