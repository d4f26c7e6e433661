package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is the glyph size in points of the status line.
const DefaultSize = 18

// Text renders a single line of status text into an RGBA bitmap: white glyphs on a fully
// transparent background, ready to be uploaded and blended over the scene.
// The last rendered line is cached, since the status only changes on input.
type Text struct {
	face   font.Face
	ascent int
	height int

	lastText string
	lastImg  *image.RGBA
}

// NewText returns a renderer using face. A nil face falls back to basicfont.Face7x13.
func NewText(face font.Face) *Text {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	return &Text{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: m.Ascent.Ceil() + m.Descent.Ceil(),
	}
}

// LoadFace returns a font face for the overlay. path "" uses the embedded Go Regular font;
// any other path is read as a TTF/OTF file. size <= 0 means DefaultSize.
func LoadFace(path string, size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("overlay font: %w", err)
		}
		data = b
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("overlay font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("overlay font: %w", err)
	}
	return face, nil
}

// Ascent is the distance in pixels from the top of a rendered line to its baseline.
func (t *Text) Ascent() int { return t.ascent }

// Measure returns the advance width of s in pixels.
func (t *Text) Measure(s string) int {
	return font.MeasureString(t.face, s).Ceil()
}

// Render returns the bitmap for s. Empty text yields nil. The returned image is shared
// until the next call with a different string and must not be modified.
func (t *Text) Render(s string) *image.RGBA {
	if s == "" {
		return nil
	}
	if s == t.lastText && t.lastImg != nil {
		return t.lastImg
	}
	w := t.Measure(s)
	if w <= 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, t.height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: t.face,
		Dot:  fixed.P(0, t.ascent),
	}
	d.DrawString(s)
	t.lastText = s
	t.lastImg = img
	return img
}
