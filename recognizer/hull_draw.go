package recognizer

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the points so the strip lines are visible past the hull
const dbgDrawPadding = 100

// DebugDraw renders the recognizer state in the terminal (iTerm only):
// committed points, the hull cycle, and the two strip lines. Debugging aid
// only; it has no effect on recognition.
func (r *Recognizer) DebugDraw(scale float64) {
	points := r.ledger.Points()
	if len(points) == 0 {
		return
	}
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Hull
	hull := r.hull.Vertices()
	if len(hull) > 1 {
		c.MoveTo(float64(hull[0].X), float64(hull[0].Y))
		for _, p := range hull[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	// Strip lines
	strip := r.Primitive()
	n2 := float64(strip.N.Dot(strip.N))
	if n2 > 0 {
		// Unit direction along the lines and a base point on each line
		span := math.Hypot(maxX-minX, maxY-minY) + 1
		dx := float64(strip.N.Y) / math.Sqrt(n2)
		dy := float64(-strip.N.X) / math.Sqrt(n2)
		for _, offset := range []float64{float64(strip.Mu), float64(strip.Mu + strip.Eps)} {
			bx := float64(strip.N.X) * offset / n2
			by := float64(strip.N.Y) * offset / n2
			c.MoveTo(bx-dx*span, by-dy*span)
			c.LineTo(bx+dx*span, by+dy*span)
		}
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	// Points
	c.SetRGB(1, 1, 0)
	for _, p := range points {
		c.DrawCircle(float64(p.X), float64(p.Y), 3/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/fuzzyseg.png")
	imgcat.CatFile("/tmp/fuzzyseg.png", os.Stdout)
}
