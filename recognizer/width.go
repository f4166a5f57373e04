package recognizer

import (
	"fmt"
	"math"
	"math/big"
)

// Thickness is the width of the minimal enclosing strip of a hull, kept in
// exact form: the Euclidean width is Num/sqrt(Len2), where Num is the signed
// area spread over the minimizing edge and Len2 that edge's squared length.
// Keeping the radical unevaluated lets every comparison stay in integers.
type Thickness struct {
	Num  int64 // Area2(edge start, edge end, apex), >= 0
	Len2 int64 // squared length of the minimizing edge, > 0
	Edge int   // hull index of the minimizing edge's start, -1 when degenerate
	Apex int   // hull index of the farthest vertex from that edge
}

func zeroThickness() Thickness {
	return Thickness{Num: 0, Len2: 1, Edge: -1, Apex: -1}
}

func (t Thickness) IsZero() bool {
	return t.Num == 0
}

// Float64 is for display only. No decision in this package is made on it.
func (t Thickness) Float64() float64 {
	return float64(t.Num) / math.Sqrt(float64(t.Len2))
}

func (t Thickness) String() string {
	return fmt.Sprintf("%d/√%d (≈%g)", t.Num, t.Len2, t.Float64())
}

// Less compares two thicknesses exactly: Num_t/√Len2_t < Num_o/√Len2_o iff
// Num_t²·Len2_o < Num_o²·Len2_t. Squares of int64 need big.Int.
func (t Thickness) Less(o Thickness) bool {
	lhs := new(big.Int).SetInt64(t.Num)
	lhs.Mul(lhs, lhs)
	lhs.Mul(lhs, big.NewInt(o.Len2))
	rhs := new(big.Int).SetInt64(o.Num)
	rhs.Mul(rhs, rhs)
	rhs.Mul(rhs, big.NewInt(t.Len2))
	return lhs.Cmp(rhs) < 0
}

// LessRat reports whether the thickness is strictly below num/den, exactly:
// Num/√Len2 < num/den iff Num²·den² < num²·Len2.
func (t Thickness) LessRat(num, den int64) bool {
	lhs := new(big.Int).SetInt64(t.Num)
	lhs.Mul(lhs, lhs)
	d2 := new(big.Int).SetInt64(den)
	d2.Mul(d2, d2)
	lhs.Mul(lhs, d2)
	rhs := new(big.Int).SetInt64(num)
	rhs.Mul(rhs, rhs)
	rhs.Mul(rhs, big.NewInt(t.Len2))
	return lhs.Cmp(rhs) < 0
}

// MeasureThickness runs rotating calipers over the hull: for each CCW edge,
// climb to the antipodal vertex (the height function around a strictly convex
// cycle is unimodal, so the climb is monotone and the whole sweep is linear
// in hull size); the minimum height over all edges is the strip width.
func MeasureThickness(h *Hull) Thickness {
	m := h.VertexCount()
	if m < 3 {
		return zeroThickness()
	}

	// Width ties are real: a digital straight line's hull has two parallel
	// leaning edges, both achieving the minimum. Break ties on the edge's
	// endpoints so the result depends only on the point set, not on the
	// insertion history that produced this particular cycle rotation.
	better := func(cur, best Thickness) bool {
		if cur.Less(best) {
			return true
		}
		if best.Less(cur) {
			return false
		}
		ca, ba := h.at(cur.Edge), h.at(best.Edge)
		if ca != ba {
			return ca.Less(ba)
		}
		return h.at((cur.Edge + 1) % m).Less(h.at((best.Edge + 1) % m))
	}

	best := Thickness{}
	j := 1
	for i := 0; i < m; i++ {
		a, b := h.at(i), h.at((i+1)%m)
		for {
			next := (j + 1) % m
			if Area2(a, b, h.at(next)) > Area2(a, b, h.at(j)) {
				j = next
			} else {
				break
			}
		}
		cur := Thickness{
			Num:  Area2(a, b, h.at(j)),
			Len2: b.Sub(a).Dot(b.Sub(a)),
			Edge: i,
			Apex: j,
		}
		if i == 0 || better(cur, best) {
			best = cur
		}
	}
	return best
}
