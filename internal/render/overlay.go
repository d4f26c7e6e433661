package render

import "github.com/go-gl/mathgl/mgl32"

// Overlay is the status box drawn over the 3D scene. Positions are normalized device
// coordinates: x and y in [-1,1], y pointing up, independent of the window size.
type Overlay struct {
	BoxMin    mgl32.Vec2 // bottom-left corner
	BoxSize   mgl32.Vec2
	BoxColor  RGBA
	Text      string
	TextAt    mgl32.Vec2 // left end of the text baseline
	TextColor RGBA
}

// StatusOverlay returns the bottom strip used for the status line: a full-width black box
// at 70% opacity with white text inset from the left edge.
func StatusOverlay(text string) Overlay {
	return Overlay{
		BoxMin:    mgl32.Vec2{-1, -0.95},
		BoxSize:   mgl32.Vec2{2, 0.1},
		BoxColor:  RGBA{0, 0, 0, 0.7},
		Text:      text,
		TextAt:    mgl32.Vec2{-0.95, -0.9},
		TextColor: White,
	}
}

// ToPixel converts a point in normalized device coordinates to window pixels
// (origin top-left, y down) for a width×height framebuffer.
func ToPixel(p mgl32.Vec2, width, height int) (x, y float32) {
	x = (p[0] + 1) / 2 * float32(width)
	y = (1 - p[1]) / 2 * float32(height)
	return x, y
}

// PixelBox returns the overlay box as a pixel rectangle (top-left corner and size).
func (o Overlay) PixelBox(width, height int) (x, y, w, h float32) {
	top := mgl32.Vec2{o.BoxMin[0], o.BoxMin[1] + o.BoxSize[1]}
	x, y = ToPixel(top, width, height)
	w = o.BoxSize[0] / 2 * float32(width)
	h = o.BoxSize[1] / 2 * float32(height)
	return x, y, w, h
}

// PixelText returns the pixel position of the text baseline origin.
func (o Overlay) PixelText(width, height int) (x, y float32) {
	return ToPixel(o.TextAt, width, height)
}
