package internal

import (
	"embed"
	"log"
	"path"
	"strings"
)

// Polygon fixtures, loaded by name (file name sans extension) from the
// fixtures/ directory through the same loaders the CLI uses. All of them fit
// on a 64x64 board.

//go:embed fixtures
var fixtures embed.FS

var fixtureShape = Shape{64, 64}

func LoadFixture(name string) Polygon {
	matches, err := fixtures.ReadDir("fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	for _, entry := range matches {
		ext := path.Ext(entry.Name())
		if strings.TrimSuffix(entry.Name(), ext) != name {
			continue
		}
		f, err := fixtures.Open("fixtures/" + entry.Name())
		if err != nil {
			log.Fatalf("Could not load fixture %q: %v", name, err)
		}
		defer f.Close()

		var poly Polygon
		switch ext {
		case ".svg":
			poly, err = LoadSVG(f)
		case ".yaml":
			poly, err = LoadYAML(f)
		default:
			log.Fatalf("Unknown fixture type %q", entry.Name())
		}
		if err != nil {
			log.Fatalf("Failed to parse fixture %q: %v", name, err)
		}
		return poly
	}
	log.Fatalf("No fixture named %q", name)
	return Polygon{}
}

func FixtureNames() []string {
	return []string{"star", "notch", "comb"}
}
