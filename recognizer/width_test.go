package recognizer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hullOf(points ...Point) *Hull {
	var h Hull
	for _, p := range points {
		h.Insert(p)
	}
	return &h
}

func TestMeasureThickness(t *testing.T) {
	t.Run("degenerate hulls have zero thickness", func(t *testing.T) {
		assert.True(t, MeasureThickness(hullOf(Point{3, 3})).IsZero())
		assert.True(t, MeasureThickness(hullOf(Point{0, 0}, Point{7, 2})).IsZero())
		assert.True(t, MeasureThickness(hullOf(Point{0, 0}, Point{3, 3}, Point{9, 9})).IsZero())
		// Zero is below any positive bound, however tight
		th := MeasureThickness(hullOf(Point{0, 0}, Point{7, 2}))
		assert.True(t, th.LessRat(1, 1000000))
	})

	t.Run("unit square", func(t *testing.T) {
		th := MeasureThickness(hullOf(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1}))
		assert.Equal(t, int64(1), th.Num)
		assert.Equal(t, int64(1), th.Len2)
		assert.InDelta(t, 1.0, th.Float64(), 1e-12)
	})

	t.Run("flat triangle measures across its base", func(t *testing.T) {
		// The minimal strip for (0,0) (2,0) (1,1) is the horizontal one
		th := MeasureThickness(hullOf(Point{0, 0}, Point{2, 0}, Point{1, 1}))
		assert.Equal(t, int64(2), th.Num)
		assert.Equal(t, int64(4), th.Len2)
		assert.InDelta(t, 1.0, th.Float64(), 1e-12)
	})

	t.Run("thin slanted hull", func(t *testing.T) {
		// (0,0) (1,0) (2,1): the minimal strip leans on the long edge
		th := MeasureThickness(hullOf(Point{0, 0}, Point{1, 0}, Point{2, 1}))
		assert.Equal(t, int64(1), th.Num)
		assert.Equal(t, int64(5), th.Len2)
	})
}

func TestThicknessComparisons(t *testing.T) {
	t.Run("LessRat is exact at the boundary", func(t *testing.T) {
		// 1/sqrt(2) = 0.70710678...; a four-digit rational brackets it
		th := Thickness{Num: 1, Len2: 2, Edge: 0, Apex: 1}
		assert.False(t, th.LessRat(7071, 10000))
		assert.True(t, th.LessRat(7072, 10000))
	})

	t.Run("strict inequality against an exact bound", func(t *testing.T) {
		// width exactly 1 is not less than 1/1
		th := Thickness{Num: 1, Len2: 1, Edge: 0, Apex: 1}
		assert.False(t, th.LessRat(1, 1))
		assert.True(t, th.LessRat(1000001, 1000000))
	})

	t.Run("Less orders by exact width", func(t *testing.T) {
		a := Thickness{Num: 1, Len2: 2}  // 0.7071...
		b := Thickness{Num: 5, Len2: 49} // 0.7142...
		assert.True(t, a.Less(b))
		assert.False(t, b.Less(a))
		assert.False(t, a.Less(a))
	})
}

func TestThicknessMonotonicUnderInsertion(t *testing.T) {
	// Adding a point can never shrink the minimal enclosing strip.
	rng := rand.New(rand.NewSource(40417))
	for trial := 0; trial < 20; trial++ {
		var h Hull
		prev := zeroThickness()
		cur := Point{0, 0}
		for i := 0; i < 30; i++ {
			cur = Point{cur.X + rng.Int63n(7) - 3, cur.Y + rng.Int63n(7) - 3}
			h.Insert(cur)
			th := MeasureThickness(&h)
			assert.False(t, th.Less(prev),
				"thickness shrank from %v to %v after inserting %v", prev, th, cur)
			prev = th
		}
	}
}
