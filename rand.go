package main

import (
	"math/rand/v2"

	"github.com/QJrocks/Convex-Hull-Quickhull-Visualizer/quickhull"
	"github.com/furui/fastnoiselite-go"
)

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

type Distribution string

const (
	// DistributionUniform spreads points evenly across the window,
	// leaving a small margin at the edges.
	DistributionUniform Distribution = "uniform"

	// DistributionClustered weights point placement by value noise, so
	// points pile up in organic blobs and the hull hugs their outline.
	DistributionClustered Distribution = "clustered"
)

// GeneratePoints creates count random points for the given
// distribution. The output is deterministic for a fixed rng seed.
func GeneratePoints(rng *rand.Rand, dist Distribution, count int) []quickhull.Point {
	if dist == DistributionClustered {
		return clusteredPoints(rng, count)
	}

	points := make([]quickhull.Point, 0, count)
	for range count {
		points = append(points, quickhull.Point{
			X: rng.IntN(pointXMax) + windowMargin,
			Y: rng.IntN(pointYMax) + windowMargin,
		})
	}

	return points
}

func clusteredPoints(rng *rand.Rand, count int) []quickhull.Point {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 0.005

	points := make([]quickhull.Point, 0, count)

	for len(points) < count {
		p := quickhull.Point{
			X: rng.IntN(pointXMax) + windowMargin,
			Y: rng.IntN(pointYMax) + windowMargin,
		}

		// rejection sample against the noise field; the max keeps the
		// acceptance loop from starving in all-negative regions
		value := max(0.05, noiseValueAt(noise, p))
		if rng.Float64() < value {
			points = append(points, p)
		}
	}

	return points
}

func noiseValueAt(noise *fastnoiselite.FastNoiseLite, p quickhull.Point) float64 {
	value := noise.GetNoise2D(fastnoiselite.FNLfloat(p.X), fastnoiselite.FNLfloat(p.Y))
	return float64(value)
}
