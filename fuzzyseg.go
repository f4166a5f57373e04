// An incremental fuzzy-segment recognition package for Go.
//
// This package takes a sequence of integer 2D points and grows, from a chosen
// start point toward both ends of the sequence, the maximal run whose points
// all fit inside a strip of two parallel lines strictly thinner than a given
// width bound. The strip is maintained incrementally: each candidate point is
// speculatively pushed into a Melkman-style convex hull, the hull's minimal
// width is measured with rotating calipers, and the point is kept or the hull
// rolled back depending on the bound. All orientation and width decisions use
// exact integer arithmetic.
package fuzzyseg

import "github.com/osuushi/fuzzyseg/recognizer"

type Point = recognizer.Point
type Strip = recognizer.Strip
type Recognizer = recognizer.Recognizer
type ExtendResult = recognizer.ExtendResult

const (
	Extended  = recognizer.Extended
	Rejected  = recognizer.Rejected
	Exhausted = recognizer.Exhausted
)

// NewRecognizer starts an incremental recognition run. See the recognizer
// package for the step-by-step API (ExtendFront, ExtendBack, Primitive, ...).
func NewRecognizer(points []Point, start int, widthNum, widthDen int64) (*Recognizer, error) {
	return recognizer.NewRecognizer(points, start, widthNum, widthDen)
}

// Recognize grows the maximal fuzzy segment around points[start] under the
// width bound widthNum/widthDen, and returns the enclosing strip together
// with the recognized point set.
//
// The extension order is front-first, but any order respecting each point's
// side ends at the same segment, so nothing is lost by not interleaving.
func Recognize(points []Point, start int, widthNum, widthDen int64) (strip Strip, segment []Point, err error) {
	defer func() {
		recoveredErr := recognizer.HandleRecognizePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	r, err := recognizer.NewRecognizer(points, start, widthNum, widthDen)
	if err != nil {
		return Strip{}, nil, err
	}
	for r.ExtendFront().Accepted() {
	}
	for r.ExtendBack().Accepted() {
	}
	return r.Primitive(), r.Points(), nil
}
