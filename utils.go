package main

import (
	"image/color"

	"github.com/QJrocks/Convex-Hull-Quickhull-Visualizer/quickhull"
	. "github.com/quasilyte/gmath"
)

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func splatVec(val float64) Vec {
	return Vec{X: val, Y: val}
}

func pointVec(p quickhull.Point) Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}
