package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QJrocks/Convex-Hull-Quickhull-Visualizer/quickhull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHullPoints(t *testing.T) {
	var buf strings.Builder

	err := WriteHullPoints(&buf, []quickhull.Point{
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 0, Y: 0},
		{X: 10, Y: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, "10,10\n0,10\n0,0\n10,0\n", buf.String())
}

func TestWriteHullPointsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")

	err := WriteHullPointsFile(path, []quickhull.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n3,4\n", string(content))
}

func TestWriteHullPointsFileBadPath(t *testing.T) {
	err := WriteHullPointsFile(filepath.Join(t.TempDir(), "missing", "points.txt"), nil)
	require.Error(t, err)
}
