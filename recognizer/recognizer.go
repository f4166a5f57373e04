package recognizer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ExtendResult is the outcome of one extension attempt. Rejection is a normal
// outcome, not an error: it just means the strip would have grown to the
// width bound.
type ExtendResult int

const (
	// The point was committed; ledger and hull grew, the cursor advanced.
	Extended ExtendResult = iota
	// Admitting the point would make the strip at least as wide as the
	// bound. Nothing changed; the cursor did not advance.
	Rejected
	// No candidate point remains on that side. Nothing changed.
	Exhausted
)

func (res ExtendResult) Accepted() bool {
	return res == Extended
}

func (res ExtendResult) String() string {
	switch res {
	case Extended:
		return "extended"
	case Rejected:
		return "rejected"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("ExtendResult(%d)", int(res))
}

// Recognizer incrementally recognizes a fuzzy segment: the maximal run of
// candidate points, growing from a start index toward both ends of the
// candidate slice, whose minimal enclosing strip stays strictly below a
// width bound of widthNum/widthDen.
//
// Every extension is speculative: the point is pushed into the hull, the new
// hull is measured, and on rejection the hull is rolled back, so a false
// answer leaves the recognizer exactly as it was. A recognizer has no usable
// zero value; construct it with NewRecognizer.
type Recognizer struct {
	candidates []Point
	nextFront  int // index of the next candidate toward the end
	nextBack   int // index of the next candidate toward the beginning

	ledger *Ledger
	hull   Hull

	widthNum, widthDen int64

	frontDead, backDead bool
}

// NewRecognizer starts a recognition run over candidates, seeded with
// candidates[start]. The width bound widthNum/widthDen must be positive, and
// every candidate coordinate must fit the exact-arithmetic range (±2^30).
// The candidate slice is not copied; the caller must not mutate it while the
// recognizer is live.
func NewRecognizer(candidates []Point, start int, widthNum, widthDen int64) (*Recognizer, error) {
	if len(candidates) == 0 {
		return nil, errors.New("fuzzyseg: no candidate points")
	}
	if start < 0 || start >= len(candidates) {
		return nil, errors.Errorf("fuzzyseg: start index %d out of range [0, %d)", start, len(candidates))
	}
	if widthNum <= 0 || widthDen <= 0 {
		return nil, errors.Errorf("fuzzyseg: width bound %d/%d must be positive", widthNum, widthDen)
	}
	for _, p := range candidates {
		if !inCoordRange(p) {
			return nil, errors.Errorf("fuzzyseg: point %v outside exact-arithmetic range ±%d", p, int64(MaxCoord))
		}
	}
	r := &Recognizer{
		candidates: candidates,
		nextFront:  start + 1,
		nextBack:   start - 1,
		ledger:     newLedger(0),
		widthNum:   widthNum,
		widthDen:   widthDen,
	}
	r.ledger.insert(candidates[start])
	r.hull.Insert(candidates[start])
	return r, nil
}

// SetMaxPoints caps the number of points the recognizer will admit.
// Extensions beyond the cap are rejected.
func (r *Recognizer) SetMaxPoints(n int) {
	if n > 0 {
		r.ledger.maxSize = n
	}
}

// ExtendFront tries to admit the next candidate toward the end of the slice.
func (r *Recognizer) ExtendFront() ExtendResult {
	return r.extend(true)
}

// ExtendBack tries to admit the next candidate toward the beginning.
func (r *Recognizer) ExtendBack() ExtendResult {
	return r.extend(false)
}

func (r *Recognizer) extend(front bool) ExtendResult {
	idx, ok := r.peek(front)
	if !ok {
		r.markDead(front)
		return Exhausted
	}
	p := r.candidates[idx]

	if r.ledger.Contains(p) {
		// Already part of the segment: idempotent, and not a rejection.
		r.advance(front)
		return Extended
	}
	if r.ledger.Full() {
		r.markDead(front)
		return Rejected
	}

	r.hull.Insert(p)
	if MeasureThickness(&r.hull).LessRat(r.widthNum, r.widthDen) {
		r.ledger.insert(p)
		r.advance(front)
		return Extended
	}
	r.hull.RollbackLast()
	r.markDead(front)
	return Rejected
}

// IsExtendableFront tests whether ExtendFront would succeed, without
// committing anything: the tentative hull insertion is always rolled back and
// the cursor does not move.
func (r *Recognizer) IsExtendableFront() bool {
	return r.isExtendable(true)
}

// IsExtendableBack is the back-side counterpart of IsExtendableFront.
func (r *Recognizer) IsExtendableBack() bool {
	return r.isExtendable(false)
}

func (r *Recognizer) isExtendable(front bool) bool {
	idx, ok := r.peek(front)
	if !ok {
		return false
	}
	p := r.candidates[idx]
	if r.ledger.Contains(p) {
		return true
	}
	if r.ledger.Full() {
		return false
	}
	r.hull.Insert(p)
	admissible := MeasureThickness(&r.hull).LessRat(r.widthNum, r.widthDen)
	r.hull.RollbackLast()
	return admissible
}

func (r *Recognizer) peek(front bool) (int, bool) {
	if front {
		return r.nextFront, r.nextFront < len(r.candidates)
	}
	return r.nextBack, r.nextBack >= 0
}

func (r *Recognizer) advance(front bool) {
	if front {
		r.nextFront++
	} else {
		r.nextBack--
	}
}

func (r *Recognizer) markDead(front bool) {
	if front {
		r.frontDead = true
	} else {
		r.backDead = true
	}
}

// Maximal is true once both ends have been rejected or exhausted: the
// segment cannot grow further.
func (r *Recognizer) Maximal() bool {
	return r.frontDead && r.backDead
}

// Primitive derives the current strip from the hull. Its Euclidean width is
// strictly below the configured bound; for a degenerate hull it is a
// zero-width strip aligned with the hull's direction.
func (r *Recognizer) Primitive() Strip {
	return stripFromHull(&r.hull, MeasureThickness(&r.hull))
}

// Thickness is the current strip width in exact form.
func (r *Recognizer) Thickness() Thickness {
	return MeasureThickness(&r.hull)
}

// Hull exposes a read-only view of the current hull vertices, CCW.
func (r *Recognizer) Hull() []Point {
	return r.hull.Vertices()
}

// Forward-container surface over the committed point set.

func (r *Recognizer) Size() int             { return r.ledger.Size() }
func (r *Recognizer) Empty() bool           { return r.ledger.Empty() }
func (r *Recognizer) MaxSize() int          { return r.ledger.MaxSize() }
func (r *Recognizer) Points() []Point       { return r.ledger.Points() }
func (r *Recognizer) Iterate() <-chan Point { return r.ledger.Iterate() }

func (r *Recognizer) String() string {
	return fmt.Sprintf("[FuzzySegment size=%d width=%v bound=%d/%d %v]",
		r.Size(), r.Thickness(), r.widthNum, r.widthDen, r.hull.String())
}

// IsValid is the structural self-check: the hull cycle is convex, every
// committed point lies on or inside it, and the strip is under the bound. A
// false result indicates a maintainer bug, never a property of the input.
func (r *Recognizer) IsValid() bool {
	if !r.hull.IsConvex() {
		return false
	}
	for _, p := range r.ledger.points {
		if !r.hull.Contains(p) {
			return false
		}
	}
	return r.hull.IsDegenerate() || MeasureThickness(&r.hull).LessRat(r.widthNum, r.widthDen)
}
