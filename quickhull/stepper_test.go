package quickhull

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive runs the stepper to completion and returns the number of calls
// that reported more work.
func drive(t *testing.T, s *Stepper, maxSteps int) int {
	t.Helper()

	var steps int
	for s.Step() {
		steps++
		require.LessOrEqual(t, steps, maxSteps, "stepper did not terminate")
	}

	return steps
}

func TestResetInsufficientPoints(t *testing.T) {
	var s Stepper

	require.ErrorIs(t, s.Reset(nil), ErrInsufficientPoints)
	require.ErrorIs(t, s.Reset([]Point{{X: 1, Y: 1}}), ErrInsufficientPoints)

	// a stepper without a loaded point set has nothing to do
	assert.False(t, s.Step())
}

func TestFinalHullBeforeTermination(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}))

	_, err := s.FinalHull()
	require.ErrorIs(t, err, ErrComputationIncomplete)

	// one step in, still not finished
	require.True(t, s.Step())
	_, err = s.FinalHull()
	require.ErrorIs(t, err, ErrComputationIncomplete)
}

func TestTwoPointsDegenerateHull(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{{X: 10, Y: 0}, {X: 0, Y: 0}}))

	steps := drive(t, &s, 16)
	assert.Equal(t, 2, steps)

	hull, err := s.FinalHull()
	require.NoError(t, err)
	require.Equal(t, []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, hull)
}

func TestTriangle(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}))

	drive(t, &s, 32)

	hull, err := s.FinalHull()
	require.NoError(t, err)

	// all three points are vertices, ordered counter-clockwise around
	// the midpoint of the extreme pair
	require.Equal(t, []Point{{X: 5, Y: 5}, {X: 0, Y: 0}, {X: 10, Y: 0}}, hull)
}

func TestSquare(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}))

	drive(t, &s, 32)

	hull, err := s.FinalHull()
	require.NoError(t, err)

	require.Equal(t, []Point{
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 0, Y: 0},
		{X: 10, Y: 0},
	}, hull)

	assertSimpleCCW(t, hull)
}

func TestSquareWithInteriorPoints(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 5, Y: 5},
		{X: 3, Y: 7},
		{X: 6, Y: 2},
	}))

	drive(t, &s, 64)

	hull, err := s.FinalHull()
	require.NoError(t, err)

	assert.Len(t, hull, 4)
	assert.NotContains(t, hull, Point{X: 5, Y: 5})
	assert.NotContains(t, hull, Point{X: 3, Y: 7})
	assert.NotContains(t, hull, Point{X: 6, Y: 2})
}

func TestStepAfterTerminationIsNoop(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}))
	drive(t, &s, 32)

	before, err := s.FinalHull()
	require.NoError(t, err)

	for range 3 {
		assert.False(t, s.Step())
	}

	after, err := s.FinalHull()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDuplicateEndpointTolerated(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset([]Point{
		{X: 0, Y: 0},
		{X: 0, Y: 0}, // duplicate of the leftmost extreme
		{X: 10, Y: 0},
		{X: 5, Y: 5},
	}))

	drive(t, &s, 64)

	hull, err := s.FinalHull()
	require.NoError(t, err)
	assert.Len(t, hull, 3)
}

func TestResetIsIdempotent(t *testing.T) {
	points := []Point{
		{X: 3, Y: 1}, {X: 9, Y: 4}, {X: 0, Y: 7},
		{X: 5, Y: 5}, {X: 8, Y: 0}, {X: 2, Y: 9},
	}

	var s Stepper

	require.NoError(t, s.Reset(points))
	drive(t, &s, 128)
	first, err := s.FinalHull()
	require.NoError(t, err)

	require.NoError(t, s.Reset(points))
	drive(t, &s, 128)
	second, err := s.FinalHull()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHullAccumulatorGrowsMonotonically(t *testing.T) {
	var s Stepper

	require.NoError(t, s.Reset(randomPoints(rand.New(rand.NewPCG(7, 7)), 64)))

	previous := s.Hull()

	for s.Step() {
		current := s.Hull()
		require.GreaterOrEqual(t, len(current), len(previous))
		require.Equal(t, previous, current[:len(previous)])
		previous = current
	}
}

func TestObservationsDuringStepping(t *testing.T) {
	var s Stepper

	input := randomPoints(rand.New(rand.NewPCG(11, 11)), 32)
	require.NoError(t, s.Reset(input))

	for s.Step() {
		a, b := s.Segment()
		assert.Contains(t, input, a)
		assert.Contains(t, input, b)

		lo, hi := s.Extremes()
		assert.LessOrEqual(t, comparePoints(lo, hi), 0)

		assert.Contains(t, input, s.Furthest())
	}
}

func TestRandomPointsProperties(t *testing.T) {
	const n = 1000

	rng := rand.New(rand.NewPCG(1, 1))
	input := randomPoints(rng, n)

	var s Stepper
	require.NoError(t, s.Reset(input))

	// one partition and one scan per call, bounded by the node count
	// of the recursion tree
	steps := drive(t, &s, 4*n+10)
	assert.Positive(t, steps)

	hull, err := s.FinalHull()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(hull), 3)

	// every hull vertex is an input point
	for _, p := range hull {
		assert.Contains(t, input, p)
	}

	// every input point lies on or inside the hull polygon
	for _, p := range input {
		for i := range hull {
			a := hull[i]
			b := hull[(i+1)%len(hull)]
			assert.GreaterOrEqual(t, Det(a, b, p), int64(0), "point %v outside edge %v→%v", p, a, b)
		}
	}

	assertSimpleCCW(t, hull)

	// the vertex set matches an independent hull implementation
	assert.ElementsMatch(t, referenceHull(input), hull)
}

func TestRandomPointsDeterministic(t *testing.T) {
	run := func() []Point {
		rng := rand.New(rand.NewPCG(42, 42))

		var s Stepper
		require.NoError(t, s.Reset(randomPoints(rng, 1000)))
		drive(t, &s, 8192)

		hull, err := s.FinalHull()
		require.NoError(t, err)

		return hull
	}

	assert.Equal(t, run(), run())
}

// assertSimpleCCW checks that every consecutive vertex triple turns
// the same way, i.e. the ring is convex and does not self-intersect.
func assertSimpleCCW(t *testing.T, hull []Point) {
	t.Helper()

	n := len(hull)
	require.GreaterOrEqual(t, n, 3)

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%n]
		c := hull[(i+2)%n]

		assert.GreaterOrEqual(t, Det(a, b, c), int64(0), "right turn at %v, %v, %v", a, b, c)
	}
}

func randomPoints(rng *rand.Rand, n int) []Point {
	points := make([]Point, 0, n)
	for range n {
		points = append(points, Point{
			X: rng.IntN(1260) + 10,
			Y: rng.IntN(700) + 10,
		})
	}

	return points
}

// referenceHull is an independent monotone-chain hull used to validate
// the stepwise result. It returns the strict hull vertices in
// counter-clockwise order.
func referenceHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sortPoints(pts)

	cross := func(o, a, b Point) int64 {
		return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
	}

	var lower []Point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Point
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
