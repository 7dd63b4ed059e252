package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	. "github.com/quasilyte/gmath"
)

type ButtonColors struct {
	Normal   color.Color
	Hover    color.Color
	Disabled color.Color
}

type Button struct {
	Disabled bool
	Colors   ButtonColors
	Text     string
	Position Vec
	Size     Vec
	hover    bool
}

func NewButton(text string, colors ButtonColors) *Button {
	return &Button{
		Colors: colors,
		Size:   Vec{X: 168, Y: 40},
		Text:   text,
	}
}

func (b *Button) Hover(loc Vec) bool {
	if b == nil {
		return false
	}

	rect := Rect{Min: b.Position, Max: b.Position.Add(b.Size)}
	hover := rect.Contains(loc)

	b.hover = hover && !b.Disabled
	return hover
}

func (b *Button) IsClicked(loc Vec, clicked bool) bool {
	if b == nil || b.Disabled {
		return false
	}

	return clicked && b.Hover(loc)
}

func (b *Button) Draw(target *ebiten.Image) {
	if b == nil {
		return
	}

	fillColor := b.Colors.Normal
	switch {
	case b.Disabled:
		fillColor = b.Colors.Disabled
	case b.hover:
		fillColor = b.Colors.Hover
	}

	// draw a shadow for the rectangle
	DrawRoundRect(target, b.Position.Add(splatVec(3)), b.Size, ShadowColor)

	// draw the rectangle
	hoverOffset := splatVec(0)
	if b.hover {
		hoverOffset = splatVec(2)
	}
	DrawRoundRect(target, b.Position.Add(hoverOffset), b.Size, fillColor)

	// draw the text
	pos := b.Position.Add(b.Size.Mulf(0.5).Add(hoverOffset))
	DrawTextCenter(target, b.Text, Font16, pos, HudTextColor)
}

func LayoutButtonsRow(origin Vec, gap float64, buttons ...*Button) {
	pos := origin

	for _, button := range buttons {
		button.Position = pos
		pos.X += button.Size.X + gap
	}
}
