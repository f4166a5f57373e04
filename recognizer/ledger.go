package recognizer

import "sort"

// The ledger is the set of points currently committed to the fuzzy segment.
// It stores points sorted lexicographically, so iteration order is a property
// of the point values, not of the order in which the segment grew. Uniqueness
// is an invariant: inserting a point twice is a no-op.
//
// Insertion is unexported. Only the recognizer commits points, and only after
// a tentative hull insertion has passed the width test.
type Ledger struct {
	points  []Point
	maxSize int
}

// DefaultMaxPoints bounds the ledger when no explicit capacity is configured.
// It exists to honor the forward-container max_size contract, not to protect
// memory; override it with Recognizer.SetMaxPoints if it is ever a problem.
const DefaultMaxPoints = 1 << 20

func newLedger(maxSize int) *Ledger {
	if maxSize <= 0 {
		maxSize = DefaultMaxPoints
	}
	return &Ledger{maxSize: maxSize}
}

func (l *Ledger) Size() int {
	return len(l.points)
}

func (l *Ledger) Empty() bool {
	return len(l.points) == 0
}

// The maximal allowed number of points, independent of how many are stored.
func (l *Ledger) MaxSize() int {
	return l.maxSize
}

// Full is true when the ledger has reached its configured capacity.
func (l *Ledger) Full() bool {
	return len(l.points) >= l.maxSize
}

func (l *Ledger) Contains(p Point) bool {
	i := l.search(p)
	return i < len(l.points) && l.points[i] == p
}

// Points returns a snapshot of the ledger in storage order. The slice is a
// copy; mutating it cannot corrupt the ledger.
func (l *Ledger) Points() []Point {
	out := make([]Point, len(l.points))
	copy(out, l.points)
	return out
}

// Iterate the ledger over a channel. This provides a nicer API for looping.
// Behavior is undefined if the ledger is modified during iteration.
func (l *Ledger) Iterate() <-chan Point {
	ch := make(chan Point)
	go func() {
		for _, p := range l.points {
			ch <- p
		}
		close(ch)
	}()
	return ch
}

func (l *Ledger) search(p Point) int {
	return sort.Search(len(l.points), func(i int) bool {
		return !l.points[i].Less(p)
	})
}

// insert adds p, keeping the slice sorted. Duplicates are silently ignored;
// the bool reports whether the point was actually new.
func (l *Ledger) insert(p Point) bool {
	i := l.search(p)
	if i < len(l.points) && l.points[i] == p {
		return false
	}
	l.points = append(l.points, Point{})
	copy(l.points[i+1:], l.points[i:])
	l.points[i] = p
	return true
}
