package recognizer

import (
	"fmt"
	"math"
	"math/big"
)

// Strip is the recognized primitive: the set of points X with
// Mu <= N·X <= Mu+Eps. N is an integer normal (not normalized), so the
// Euclidean width of the strip is Eps/|N|. The strip is built by the
// recognizer and only read by callers; nothing in this package inspects one
// after construction.
type Strip struct {
	N   Point
	Mu  int64
	Eps int64
}

// Width of the strip in Euclidean units. Display only; use WidthLess for
// decisions.
func (s Strip) Width() float64 {
	n2 := s.N.Dot(s.N)
	if n2 == 0 {
		return 0
	}
	return float64(s.Eps) / math.Sqrt(float64(n2))
}

// WidthLess reports, exactly, whether the strip's Euclidean width is strictly
// below num/den.
func (s Strip) WidthLess(num, den int64) bool {
	n2 := s.N.Dot(s.N)
	if n2 == 0 {
		return num > 0
	}
	lhs := new(big.Int).SetInt64(s.Eps)
	lhs.Mul(lhs, lhs)
	d2 := new(big.Int).SetInt64(den)
	d2.Mul(d2, d2)
	lhs.Mul(lhs, d2)
	rhs := new(big.Int).SetInt64(num)
	rhs.Mul(rhs, rhs)
	rhs.Mul(rhs, big.NewInt(n2))
	return lhs.Cmp(rhs) < 0
}

// Contains reports whether p satisfies the strip's two inequalities.
func (s Strip) Contains(p Point) bool {
	d := s.N.Dot(p)
	return d >= s.Mu && d <= s.Mu+s.Eps
}

func (s Strip) String() string {
	return fmt.Sprintf("Strip{%d <= (%d,%d)·X <= %d, width ≈%g}",
		s.Mu, s.N.X, s.N.Y, s.Mu+s.Eps, s.Width())
}

// stripFromHull derives the primitive from the hull and its measured
// thickness. The normal is the left perpendicular of the minimizing edge, so
// for a CCW hull the apex sits on the positive side and Eps equals the
// thickness numerator. Degenerate hulls get a zero-width strip aligned with
// whatever direction they do have.
func stripFromHull(h *Hull, t Thickness) Strip {
	switch h.VertexCount() {
	case 0:
		fatalf("cannot build a strip from an empty hull")
		panic("unreachable")
	case 1:
		return Strip{N: Point{0, 1}, Mu: h.at(0).Y, Eps: 0}
	case 2:
		d := h.at(1).Sub(h.at(0))
		n := Point{-d.Y, d.X}
		return Strip{N: n, Mu: n.Dot(h.at(0)), Eps: 0}
	}
	a := h.at(t.Edge)
	b := h.at((t.Edge + 1) % h.VertexCount())
	d := b.Sub(a)
	n := Point{-d.Y, d.X}
	return Strip{N: n, Mu: n.Dot(a), Eps: t.Num}
}
