package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultSize is the edge length in pixels of the square texture handed to the display.
const DefaultSize = 256

// checkerCells is the number of squares per row of the fallback texture.
const checkerCells = 8

// Load decodes the image at path (PNG, JPEG or BMP) and resamples it to a size×size square.
// size <= 0 means DefaultSize.
func Load(path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		size = DefaultSize
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	return Fit(img, size), nil
}

// Fit resamples img to a size×size square with linear filtering.
func Fit(img image.Image, size int) *image.RGBA {
	return transform.Resize(img, size, size, transform.Linear)
}

// Checkerboard returns a size×size light/dark checkerboard, used when no texture file is
// configured or the configured one cannot be read.
func Checkerboard(size int) *image.RGBA {
	if size <= 0 {
		size = DefaultSize
	}
	light := color.RGBA{230, 230, 230, 255}
	dark := color.RGBA{90, 90, 110, 255}
	cell := size / checkerCells
	if cell == 0 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// LoadOrChecker loads path, falling back to a checkerboard when path is empty or unreadable.
// The returned error explains the fallback and is nil when path was empty or loaded fine.
func LoadOrChecker(path string, size int) (*image.RGBA, error) {
	if path == "" {
		return Checkerboard(size), nil
	}
	img, err := Load(path, size)
	if err != nil {
		return Checkerboard(size), err
	}
	return img, nil
}
