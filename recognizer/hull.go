package recognizer

import (
	"fmt"
	"sort"
	"strings"
)

// Hull maintains the convex hull of every point it has been fed, as a cyclic
// sequence of indices into an arena of points. The arena-with-indices layout
// follows Melkman's double-ended structure: push and pop happen at the seam
// where the newest point joined, and a snapshot for rollback is a flat slice
// copy rather than a deep clone.
//
// The vertex cycle is counterclockwise and strictly convex: no three
// consecutive hull vertices are collinear. A point lying on a hull edge is
// absorbed without becoming a vertex.
type Hull struct {
	arena []Point
	verts []int // indices into arena, CCW

	saved hullSnapshot
}

type hullSnapshot struct {
	verts    []int
	arenaLen int
	valid    bool
}

func (h *Hull) at(i int) Point {
	return h.arena[h.verts[i]]
}

// VertexCount is the number of hull vertices: 0 for an empty hull, 1 for a
// point, 2 for a segment, 3+ for a proper polygon.
func (h *Hull) VertexCount() int {
	return len(h.verts)
}

// Fewer than three vertices: a point or a segment. The width of a degenerate
// hull is exactly zero.
func (h *Hull) IsDegenerate() bool {
	return len(h.verts) < 3
}

// Vertices returns the hull cycle in CCW order. The slice is a copy.
func (h *Hull) Vertices() []Point {
	out := make([]Point, len(h.verts))
	for i := range h.verts {
		out[i] = h.at(i)
	}
	return out
}

func (h *Hull) String() string {
	var sb strings.Builder
	sb.WriteString("Hull{")
	for i := range h.verts {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, h.at(i))
	}
	sb.WriteString("}")
	return sb.String()
}

// Insert feeds one more point into the hull, snapshotting first so the caller
// can RollbackLast. Points inserted between a snapshot's Insert and its
// rollback must come one at a time; there is deliberately only one slot.
func (h *Hull) Insert(p Point) {
	h.snapshot()
	h.arena = append(h.arena, p)
	idx := len(h.arena) - 1

	switch len(h.verts) {
	case 0:
		h.verts = append(h.verts, idx)
	case 1:
		if p != h.at(0) {
			h.verts = append(h.verts, idx)
		}
	case 2:
		h.insertIntoSegment(idx, p)
	default:
		h.spliceVisible(idx, p)
		if !h.IsConvex() {
			// The incremental update produced a reflex cycle, which means the
			// point's visible arc wasn't contiguous from where we spliced.
			// Rebuild from scratch; the arena has every point we were fed.
			h.rebuild()
		}
	}
}

// RollbackLast restores the hull exactly as it was before the most recent
// Insert. Calling it twice in a row is a bug.
func (h *Hull) RollbackLast() {
	if !h.saved.valid {
		fatalf("hull rollback without a pending insert")
	}
	h.verts = append(h.verts[:0], h.saved.verts...)
	h.arena = h.arena[:h.saved.arenaLen]
	h.saved.valid = false
}

func (h *Hull) snapshot() {
	h.saved.verts = append(h.saved.verts[:0], h.verts...)
	h.saved.arenaLen = len(h.arena)
	h.saved.valid = true
}

// Grow a two-vertex (segment) hull. While the fed points stay collinear the
// hull remains the segment between the two extremes; the first point off the
// line turns it into a CCW triangle.
func (h *Hull) insertIntoSegment(idx int, p Point) {
	a, b := h.at(0), h.at(1)
	s := Area2(a, b, p)
	if s > 0 {
		h.verts = append(h.verts, idx)
		return
	}
	if s < 0 {
		h.verts = []int{h.verts[0], idx, h.verts[1]}
		return
	}
	// Collinear. Keep the two extremes of the line.
	switch {
	case onSegment(a, b, p):
		// between the extremes, absorbed
	case onSegment(p, b, a):
		// a is now interior, p is the new extreme on a's side
		h.verts[0] = idx
	default:
		h.verts[1] = idx
	}
}

// The general Melkman step. Edges strictly visible from p form one contiguous
// arc of the cycle; the vertices interior to that arc are popped and p is
// pushed in their place. If no edge is strictly visible, p is on or inside
// the hull and nothing changes.
func (h *Hull) spliceVisible(idx int, p Point) {
	m := len(h.verts)
	vis := make([]bool, m)
	anyVisible := false
	for e := 0; e < m; e++ {
		if Area2(h.at(e), h.at((e+1)%m), p) < 0 {
			vis[e] = true
			anyVisible = true
		}
	}
	if !anyVisible {
		return
	}

	// Start of the visible arc: a visible edge whose predecessor is not.
	start := -1
	for e := 0; e < m; e++ {
		if vis[e] && !vis[(e+m-1)%m] {
			start = e
			break
		}
	}
	if start < 0 {
		// Every edge visible from a single point: can't happen for a convex
		// cycle, so the cycle is already broken.
		fatalf("hull cycle is not convex: %v", h)
	}
	end := start
	for vis[(end+1)%m] {
		end = (end + 1) % m
	}

	// New cycle: p, then the surviving vertices from the end of the arc
	// around to its start.
	newVerts := make([]int, 0, m+1)
	newVerts = append(newVerts, idx)
	for e := (end + 1) % m; ; e = (e + 1) % m {
		newVerts = append(newVerts, h.verts[e])
		if e == start {
			break
		}
	}
	h.verts = newVerts

	// Seam cleanup: neighbors that became collinear with p are no longer
	// vertices. The pop condition is the usual non-left-turn test.
	for len(h.verts) >= 3 && Area2(h.at(0), h.at(1), h.at(2)) <= 0 {
		h.verts = append(h.verts[:1], h.verts[2:]...)
	}
	for len(h.verts) >= 3 && Area2(h.at(len(h.verts)-2), h.at(len(h.verts)-1), h.at(0)) <= 0 {
		h.verts = h.verts[:len(h.verts)-1]
	}
}

// IsConvex checks that the vertex cycle is strictly convex and CCW. It is the
// hull's structural self-check; a false result after an insert triggers a
// rebuild, and a false result at rest means a maintainer bug.
func (h *Hull) IsConvex() bool {
	m := len(h.verts)
	switch m {
	case 0, 1:
		return true
	case 2:
		return h.at(0) != h.at(1)
	}
	for i := 0; i < m; i++ {
		if Area2(h.at(i), h.at((i+1)%m), h.at((i+2)%m)) <= 0 {
			return false
		}
	}
	return true
}

// Contains reports whether p lies on or inside the hull.
func (h *Hull) Contains(p Point) bool {
	switch len(h.verts) {
	case 0:
		return false
	case 1:
		return p == h.at(0)
	case 2:
		return Area2(h.at(0), h.at(1), p) == 0 && onSegment(h.at(0), h.at(1), p)
	}
	m := len(h.verts)
	for i := 0; i < m; i++ {
		if Area2(h.at(i), h.at((i+1)%m), p) < 0 {
			return false
		}
	}
	return true
}

// Full rebuild by monotone chain over the whole arena. O(n log n), used only
// when the incremental step can't be trusted.
func (h *Hull) rebuild() {
	order := make([]int, len(h.arena))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return h.arena[order[i]].Less(h.arena[order[j]])
	})

	// Drop duplicate points; the arena keeps every fed point, including ones
	// fed more than once.
	uniq := order[:0]
	for _, idx := range order {
		if len(uniq) == 0 || h.arena[idx] != h.arena[uniq[len(uniq)-1]] {
			uniq = append(uniq, idx)
		}
	}

	if len(uniq) <= 2 {
		h.verts = append(h.verts[:0], uniq...)
		return
	}

	chain := func(idxs []int) []int {
		var out []int
		for _, idx := range idxs {
			for len(out) >= 2 &&
				Area2(h.arena[out[len(out)-2]], h.arena[out[len(out)-1]], h.arena[idx]) <= 0 {
				out = out[:len(out)-1]
			}
			out = append(out, idx)
		}
		return out
	}

	lower := chain(uniq)
	rev := make([]int, len(uniq))
	for i, idx := range uniq {
		rev[len(uniq)-1-i] = idx
	}
	upper := chain(rev)

	h.verts = h.verts[:0]
	h.verts = append(h.verts, lower[:len(lower)-1]...)
	h.verts = append(h.verts, upper[:len(upper)-1]...)
}
