package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/QJrocks/Convex-Hull-Quickhull-Visualizer/quickhull"
)

// WriteHullPoints writes one "x,y" line per hull vertex, in the order
// given by the finalizer.
func WriteHullPoints(w io.Writer, points []quickhull.Point) error {
	bw := bufio.NewWriter(w)

	for _, p := range points {
		fmt.Fprintf(bw, "%d,%d\n", p.X, p.Y)
	}

	return bw.Flush()
}

func WriteHullPointsFile(path string, points []quickhull.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteHullPoints(f, points); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
