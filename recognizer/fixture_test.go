package recognizer

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point chains. This is not a
// full (or even correct) svg parser. It parses the SVG and then finds
// whatever the first polyline is, then converts that into a []Point in curve
// order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}
	polylineEl := polylines[0]

	pointString := polylineEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseInt(coords[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseInt(coords[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}
