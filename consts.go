package main

import "image/color"

const windowWidth = 1280
const windowHeight = 720
const windowMargin = 10

const pointXMax = windowWidth - windowMargin*2
const pointYMax = windowHeight - windowMargin*2

const pointRadius = 5

var BackgroundColor color.Color = rgbaOf(0xfafaf5ff)

// candidate points, tinted by the side of the current boundary
// segment they fall on
var PointOutsideColor = rgbaOf(0xcc9970ff)
var PointInsideColor = rgbaOf(0x3f3f3fff)
var PointOnLineColor = rgbaOf(0x9a9a9aff)

// the local extreme pair and the most recent furthest point
var ExtremeColor = rgbaOf(0xd04040ff)
var FurthestColor = rgbaOf(0x40b040ff)

var SegmentColor = rgbaOf(0xb089abff)
var HullEdgeColor = rgbaOf(0x2a2a2aff)
var HullClosingColor = rgbaOf(0x4060c0ff)

var HudRectangleColor color.Color = rgbaOf(0x937b6aff)
var HudTextColor color.Color = rgbaOf(0xfafaf5ff)
var ShadowColor color.Color = rgbaOf(0xada38780)
var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}

var NewPointsButtonColors = ButtonColors{
	Normal: rgbaOf(0x6f8b6eff),
	Hover:  rgbaOf(0x87a985ff),
}

var PauseButtonColors = ButtonColors{
	Normal: rgbaOf(0xa97e5cff),
	Hover:  rgbaOf(0xcc9970ff),
}

var ScreenshotButtonColors = ButtonColors{
	Normal:   rgbaOf(0x838383ff),
	Hover:    rgbaOf(0xa0a0a0ff),
	Disabled: rgbaOf(0xc0c0c0ff),
}
