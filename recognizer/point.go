package recognizer

import "fmt"

// Points are integer-valued. All orientation decisions are made with exact
// integer arithmetic; there is no tolerance constant anywhere in this package,
// because a tolerance on a turn test can flip the hull's orientation
// unpredictably near collinear configurations. The price is a coordinate
// range limit: cross products are computed in int64, so coordinates must stay
// within ±2^30. MaxCoord is checked at the API boundary.
const MaxCoord = 1 << 30

type Point struct {
	X, Y int64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Lexicographic order by X then Y. This is the ledger's storage order, chosen
// to match iteration stability rather than any geometric property.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Dot(q Point) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the 2D cross product (signed parallelogram area).
func (p Point) Cross(q Point) int64 {
	return p.X*q.Y - p.Y*q.X
}

// Area2 is twice the signed area of the triangle abc: positive when abc is a
// counterclockwise turn, negative when clockwise, zero when collinear. This is
// the one orientation predicate everything else is built on.
func Area2(a, b, c Point) int64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func inCoordRange(p Point) bool {
	return p.X > -MaxCoord && p.X < MaxCoord && p.Y > -MaxCoord && p.Y < MaxCoord
}

// True when c lies on the closed segment ab. Assumes the three points are
// collinear; the caller checks Area2 first.
func onSegment(a, b, c Point) bool {
	d := b.Sub(a)
	t := c.Sub(a).Dot(d)
	return t >= 0 && t <= d.Dot(d)
}
