package quickhull

import (
	"cmp"
	"errors"
	"math"
	"slices"
)

var (
	// ErrInsufficientPoints is returned by Reset when fewer than two
	// points are supplied.
	ErrInsufficientPoints = errors.New("quickhull: need at least two points")

	// ErrComputationIncomplete is returned by FinalHull while Step has
	// not yet reported termination.
	ErrComputationIncomplete = errors.New("quickhull: computation is not finished")
)

type progress int

const (
	recurseOne progress = iota
	recurseTwo
	done

	// firstIteration marks the root only. It behaves like recurseOne
	// except that its children are already built during Reset.
	firstIteration
)

// node stands in for one level of the recursive Quickhull call. The
// stepper walks these instead of the call stack, so the walk can stop
// after every single unit of work.
type node struct {
	// the candidate points still unresolved on the outside of segment
	// a→b, kept sorted left-to-right, top-to-bottom
	points []Point

	segmentA Point
	segmentB Point

	progress progress

	// right is descended into first, left second. parent is a
	// non-owning back reference, used only to resume the walk once a
	// subtree is finished.
	right  *node
	left   *node
	parent *node
}

// split partitions n's points against the two boundaries p→c and c→q
// and hangs the resulting subsets off n as fresh child nodes.
func (n *node) split(p, q, c Point) {
	n.left = &node{
		points:   outside(p, c, n.points),
		segmentA: p,
		segmentB: c,
		progress: recurseOne,
		parent:   n,
	}

	n.right = &node{
		points:   outside(c, q, n.points),
		segmentA: c,
		segmentB: q,
		progress: recurseOne,
		parent:   n,
	}
}

// Stepper drives a single Quickhull computation. The zero value is
// ready to use; call Reset to load a point set, then call Step until
// it returns false and collect the result with FinalHull.
type Stepper struct {
	base []Point
	hull []Point

	current *node

	// midpoint of the global extreme pair, anchors the angular sort of
	// the finished hull
	center Point

	// observation state updated by Step, only used by callers that
	// want to display progress
	min      Point
	max      Point
	furthest Point
}

// Reset clears all state and loads a new point set. The bootstrap
// segment runs from the global leftmost to the global rightmost point;
// both become the first two hull vertices, and the root's two children
// cover the half planes on either side of that segment.
func (s *Stepper) Reset(points []Point) error {
	if len(points) < 2 {
		return ErrInsufficientPoints
	}

	s.base = slices.Clone(points)
	sortPoints(s.base)

	min := s.base[0]
	max := s.base[len(s.base)-1]

	root := &node{
		points:   s.base,
		segmentA: min,
		segmentB: max,
		progress: firstIteration,
	}

	// the degenerate split with q == p makes the two children cover
	// the full half plane on each side of min→max
	root.split(min, min, max)

	s.current = root
	s.hull = []Point{min, max}

	s.min = min
	s.max = max
	s.furthest = min
	s.center = Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}

	return nil
}

// Step performs one unit of work: one partition plus one furthest
// point scan, at most. It returns true while more work remains and
// false once the hull is complete. Calling Step again after it
// returned false is a no-op that returns false again.
func (s *Stepper) Step() bool {
	if s.current == nil {
		return false
	}

	// nothing left outside this boundary; the segment already is a
	// hull edge
	if len(s.current.points) == 0 {
		s.current.progress = done
	}

	// a finished node releases its children and hands control back to
	// its parent. The root finishing means the hull is complete.
	for s.current.progress == done {
		s.current.right = nil
		s.current.left = nil

		if s.current.parent == nil {
			return false
		}

		s.current = s.current.parent
	}

	pts := s.current.points

	// points are kept sorted, so the local extremes are the two ends
	s.min = pts[0]
	s.max = pts[len(pts)-1]

	// recomputed on the second visit of a node as well; a cache would
	// not change the output, only the work done per step
	furthest := Furthest(s.current.segmentA, s.current.segmentB, pts)

	// first visit with a nonempty set: found a new hull vertex, spawn
	// the two sub-problems on either side of it
	if s.current.progress == recurseOne {
		s.current.split(s.current.segmentA, s.current.segmentB, furthest)
		s.hull = append(s.hull, furthest)
		s.furthest = furthest
	}

	switch s.current.progress {
	case firstIteration, recurseOne:
		s.current.progress = recurseTwo
		s.current = s.current.right

	case recurseTwo:
		s.current.progress = done
		s.current = s.current.left
	}

	return true
}

// Done reports whether Step has reached the terminal state.
func (s *Stepper) Done() bool {
	return s.current != nil && s.current.parent == nil && s.current.progress == done
}

// Segment returns the boundary of the node the walk sits on.
func (s *Stepper) Segment() (Point, Point) {
	if s.current == nil {
		return Point{}, Point{}
	}

	return s.current.segmentA, s.current.segmentB
}

// Extremes returns the local minimum and maximum of the point set most
// recently examined by Step.
func (s *Stepper) Extremes() (Point, Point) {
	return s.min, s.max
}

// Furthest returns the hull vertex most recently discovered by Step.
func (s *Stepper) Furthest() Point {
	return s.furthest
}

// Points returns the sorted input point set loaded by Reset. The
// caller must not modify it.
func (s *Stepper) Points() []Point {
	return s.base
}

// Hull returns a snapshot of all hull vertices discovered so far, in
// discovery order. The set only ever grows; it is not complete until
// Step reports termination.
func (s *Stepper) Hull() []Point {
	return slices.Clone(s.hull)
}

// OrderedHull returns the vertices discovered so far as a closed
// counter-clockwise ring around the extreme-pair midpoint. Before
// termination this is the partial hull; afterwards it equals the
// result of FinalHull.
func (s *Stepper) OrderedHull() []Point {
	ordered := slices.Clone(s.hull)

	slices.SortFunc(ordered, func(a, b Point) int {
		return cmp.Compare(angleFrom(s.center, a), angleFrom(s.center, b))
	})

	return ordered
}

// FinalHull returns the finished hull as a simple counter-clockwise
// polygon. It fails with ErrComputationIncomplete while Step has not
// yet returned false.
func (s *Stepper) FinalHull() ([]Point, error) {
	if !s.Done() {
		return nil, ErrComputationIncomplete
	}

	return s.OrderedHull(), nil
}

// angleFrom returns the angle of the vector pointing from p towards
// center. Sorting by this angle ascending yields the counter-clockwise
// vertex order.
func angleFrom(center, p Point) float64 {
	return math.Atan2(float64(center.Y-p.Y), float64(center.X-p.X))
}
