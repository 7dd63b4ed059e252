package main

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	. "github.com/quasilyte/gmath"
	"golang.org/x/image/font/gofont/goregular"
)

var Font = sync.OnceValue(func() *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	return source
})

var Font16 = &text.GoTextFace{
	Source: Font(),
	Size:   16.0,
}

var Font24 = &text.GoTextFace{
	Source: Font(),
	Size:   24.0,
}

func MeasureText(face text.Face, t string) Vec {
	width, height := text.Measure(t, face, 0)
	return Vec{X: width, Y: height}
}

func DrawText(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color, primaryAlign, secondaryAlign text.Align) {
	if color == nil {
		color = DebugColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = primaryAlign
	op.SecondaryAlign = secondaryAlign
	op.ColorScale.ScaleWithColor(color)
	op.LineSpacing = face.Metrics().XHeight * 2.0
	text.Draw(target, msg, face, op)
}

func DrawTextCenter(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignCenter, text.AlignCenter)
}

func DrawTextLeft(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignStart, text.AlignStart)
}
