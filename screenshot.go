package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// SaveScreenshot encodes the pixels of the offscreen scene as a png
// file. The screen itself cannot be read back, which is why the game
// renders into a canvas image first.
func SaveScreenshot(img *ebiten.Image, path string) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]byte, 4*width*height)
	img.ReadPixels(pixels)

	rgba := &image.RGBA{
		Pix:    pixels,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, rgba); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
