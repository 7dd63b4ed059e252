// Package quickhull computes the convex hull of a 2D integer point set
// with the Quickhull algorithm, exposed as a resumable state machine:
// every call to Stepper.Step advances the computation by exactly one
// unit of work, so a caller can watch, pause or abandon the hull as it
// forms.
package quickhull

import (
	"cmp"
	"slices"
)

// Point is an immutable integer coordinate pair.
type Point struct {
	X int
	Y int
}

// Det returns the signed doubled area of the triangle (a, b, p). The
// sign tells which side of the directed segment a→b the point p lies
// on; negative means the outside used for hull growth. The expansion
// is evaluated in int64 so coordinates up to a few hundred million
// cannot overflow it.
func Det(a, b, p Point) int64 {
	x1, y1 := int64(a.X), int64(a.Y)
	x2, y2 := int64(b.X), int64(b.Y)
	x3, y3 := int64(p.X), int64(p.Y)

	return x1*y2 + x3*y1 + x2*y3 - x3*y2 - x2*y1 - x1*y3
}

// comparePoints orders points left-to-right, top-to-bottom. Every
// point list in this package is kept in this order so runs are
// deterministic for a given input.
func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

func sortPoints(pts []Point) {
	slices.SortFunc(pts, comparePoints)
}

// Furthest returns the point of pts with the largest absolute distance
// from the line through a and b. The first point wins ties. pts must
// not be empty.
func Furthest(a, b Point, pts []Point) Point {
	furthest := pts[0]
	prevMax := int64(-1)

	for _, p := range pts {
		d := Det(a, b, p)
		if d < 0 {
			d = -d
		}

		if d > prevMax {
			prevMax = d
			furthest = p
		}
	}

	return furthest
}

// outside filters pts down to the points strictly on the outside of
// the directed segment begin→end. Points equal to either endpoint are
// skipped, points on the line or on the inside are dropped for good:
// they lie within the emerging hull and can never become vertices. The
// result is a fresh, re-sorted slice.
func outside(begin, end Point, pts []Point) []Point {
	var result []Point

	for _, p := range pts {
		if p == begin || p == end {
			continue
		}

		if Det(begin, end, p) < 0 {
			result = append(result, p)
		}
	}

	sortPoints(result)

	return result
}
