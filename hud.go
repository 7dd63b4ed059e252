package main

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

// a single white pixel to texture solid triangles with
var whiteImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// hudRectangle paints a rounded status rectangle with a single line of
// text and advances pos past it.
func hudRectangle(target *ebiten.Image, pos *Vec, msg string, rectangleColor color.Color) {
	textWidth := MeasureText(Font16, msg).X

	rSize := Vec{X: textWidth + 16*2, Y: 40}
	rPos := *pos

	// small shadow below the rectangle
	DrawRoundRect(target, rPos.Add(splatVec(2)), rSize, ShadowColor)
	DrawRoundRect(target, rPos, rSize, rectangleColor)

	DrawTextCenter(target, msg, Font16, rPos.Add(rSize.Mulf(0.5)), HudTextColor)

	pos.X += rSize.X + 12
}

func DrawRoundRect(target *ebiten.Image, rectanglePos Vec, rectangleSize Vec, color color.Color) {
	rrVertices, rrIndices := RoundedRectangle(rectanglePos, rectangleSize, 8)

	ApplyColorToVertices(rrVertices, color)

	target.DrawTriangles(rrVertices, rrIndices, whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

var rrVertices []ebiten.Vertex
var rrIndices []uint16

func RoundedRectangle(pos Vec, size Vec, radius float64) ([]ebiten.Vertex, []uint16) {
	r := float32(radius)
	p := pos.AsVec32()
	s := size.AsVec32()

	var path vector.Path

	c0 := p
	c1 := p.Add(Vec32{X: s.X})
	c2 := p.Add(Vec32{Y: s.Y})
	c3 := p.Add(s)

	path.MoveTo(c0.X+r, c0.Y)
	path.ArcTo(c1.X, c1.Y, c3.X, c3.Y, r)
	path.ArcTo(c3.X, c3.Y, c2.X, c2.Y, r)
	path.ArcTo(c2.X, c2.Y, c0.X, c0.Y, r)
	path.ArcTo(c0.X, c0.Y, c1.X, c1.Y, r)

	rrVertices, rrIndices = path.AppendVerticesAndIndicesForFilling(rrVertices[:0], rrIndices[:0])
	return rrVertices, rrIndices
}

func ApplyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()

	for idx := range vertices {
		vertices[idx].ColorR = float32(r) / 0xffff
		vertices[idx].ColorG = float32(g) / 0xffff
		vertices[idx].ColorB = float32(b) / 0xffff
		vertices[idx].ColorA = float32(a) / 0xffff
	}
}
