package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"cube-viewer/internal/scene"
)

// RGBA is a color with channels in [0,1].
type RGBA struct {
	R, G, B, A float32
}

var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
	Red   = RGBA{1, 0, 0, 1}
)

// FromScene converts a palette color to an opaque RGBA.
func FromScene(c scene.Color) RGBA {
	return RGBA{c.R, c.G, c.B, 1}
}

// Mul multiplies two colors channel by channel.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Bytes returns the color as 8-bit channels, clamped.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

func toByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// Light is a single light source. Position is in eye space. Only directional lights (W = 0)
// are shaded exactly; for W != 0 the direction from the origin is used.
type Light struct {
	Enabled  bool
	Position mgl32.Vec4
	Ambient  RGBA
	Diffuse  RGBA
	Specular RGBA
}

// DefaultLight is a directional white light from (1,1,1).
func DefaultLight() Light {
	return Light{
		Enabled:  true,
		Position: mgl32.Vec4{1, 1, 1, 0},
		Ambient:  White,
		Diffuse:  White,
		Specular: White,
	}
}

// Material describes how a surface reacts to the light. It is applied on every frame
// whether or not lighting is enabled.
type Material struct {
	Ambient   RGBA
	Diffuse   RGBA
	Specular  RGBA
	Shininess float32
}

// DefaultMaterial is near-black ambient, white diffuse and specular, shininess 50.
func DefaultMaterial() Material {
	return Material{
		Ambient:   RGBA{0, 0, 0, 1},
		Diffuse:   White,
		Specular:  White,
		Shininess: 50,
	}
}

// Shade returns the color of a flat face with the given eye-space normal.
// With the light disabled the base color is returned unchanged. Otherwise the classic
// per-vertex model is used with base tinting the material's ambient and diffuse terms:
// ambient + max(N·L,0)·diffuse + (N·H)^shininess·specular, infinite viewer along +Z.
func Shade(l Light, m Material, normal mgl32.Vec3, base RGBA) RGBA {
	if !l.Enabled {
		return base
	}
	n := normal.Normalize()
	ld := l.Position.Vec3().Normalize()

	ambient := l.Ambient.Mul(m.Ambient).Mul(base)
	out := ambient
	nDotL := n.Dot(ld)
	if nDotL > 0 {
		diffuse := l.Diffuse.Mul(m.Diffuse).Mul(base)
		half := ld.Add(mgl32.Vec3{0, 0, 1}).Normalize()
		spec := math32.Pow(math32.Max(n.Dot(half), 0), m.Shininess)
		specular := l.Specular.Mul(m.Specular)
		out.R += nDotL*diffuse.R + spec*specular.R
		out.G += nDotL*diffuse.G + spec*specular.G
		out.B += nDotL*diffuse.B + spec*specular.B
	}
	return RGBA{clamp01(out.R), clamp01(out.G), clamp01(out.B), m.Diffuse.A * base.A}
}
