package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/QJrocks/Convex-Hull-Quickhull-Visualizer/quickhull"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Uint64("seed", 1, "seed for the random point generator")
	count := flag.Int("points", 1000, "number of points to generate")
	interval := flag.Duration("interval", 300*time.Millisecond, "wait between steps, lower is faster")
	dist := flag.String("dist", string(DistributionUniform), "point distribution, uniform or clustered")
	outfile := flag.String("out", "points.txt", "file the finished hull is written to")
	headless := flag.Bool("headless", false, "compute the hull without opening a window")
	withProfile := flag.Bool("profile", false, "write a cpu profile")
	flag.Parse()

	if *withProfile {
		defer ProfileCPU()()
	}

	if *count < 2 {
		log.Fatal("need at least two points to build a hull")
	}

	if *headless {
		if err := runHeadless(*seed, *count, Distribution(*dist), *outfile); err != nil {
			log.Fatal(err)
		}

		return
	}

	game := &Game{
		debug:        Debug,
		screenWidth:  windowWidth,
		screenHeight: windowHeight,

		seed:         *seed,
		pointCount:   *count,
		distribution: Distribution(*dist),
		stepInterval: *interval,
		outfile:      *outfile,
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Convex Hull QuickHull")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless drives the stepper to completion in a plain loop and
// writes the resulting point list, no window needed.
func runHeadless(seed uint64, count int, dist Distribution, outfile string) error {
	rng := RandWithSeed(seed)
	points := GeneratePoints(rng, dist, count)

	var stepper quickhull.Stepper
	if err := stepper.Reset(points); err != nil {
		return err
	}

	var steps int
	for stepper.Step() {
		steps++
	}

	hull, err := stepper.FinalHull()
	if err != nil {
		return err
	}

	if err := WriteHullPointsFile(outfile, hull); err != nil {
		return err
	}

	fmt.Printf("%d points, %d steps, hull has %d vertices, written to %s\n",
		count, steps, len(hull), outfile)

	return nil
}
