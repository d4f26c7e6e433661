package graphics

import (
	"image"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"cube-viewer/internal/overlay"
	"cube-viewer/internal/render"
)

// Surface draws render calls into the raylib window. Create it after the window is open.
type Surface struct {
	width, height int

	// HUD, when set, is drawn on top of the frame just before it is presented.
	HUD func()

	textures map[render.TextureHandle]rl.Texture2D
	text     *overlay.Text
	textTex  rl.Texture2D
	textStr  string
	drawing  bool
}

// NewSurface returns a surface for a width×height window that renders status text with text.
func NewSurface(width, height int, text *overlay.Text) *Surface {
	if text == nil {
		text = overlay.NewText(nil)
	}
	return &Surface{
		width:    width,
		height:   height,
		textures: make(map[render.TextureHandle]rl.Texture2D),
		text:     text,
	}
}

// UploadTexture copies img to the GPU with linear filtering and returns its handle.
func (s *Surface) UploadTexture(img *image.RGBA) render.TextureHandle {
	im := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(im)
	rl.UnloadImage(im)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	h := render.TextureHandle(tex.ID)
	s.textures[h] = tex
	return h
}

// Unload releases every texture the surface uploaded.
func (s *Surface) Unload() {
	for h, tex := range s.textures {
		rl.UnloadTexture(tex)
		delete(s.textures, h)
	}
	if s.textTex.ID != 0 {
		rl.UnloadTexture(s.textTex)
		s.textTex = rl.Texture2D{}
	}
}

func (s *Surface) Clear(c render.RGBA) {
	if !s.drawing {
		rl.BeginDrawing()
		s.drawing = true
	}
	rl.ClearBackground(toColor(c))
}

func (s *Surface) DrawCube(c render.CubeCall) {
	s.begin3D(c.Camera, c.Model)
	if c.Texture.Enabled {
		rl.SetTexture(uint32(c.Texture.Handle))
	}
	rl.Begin(rl.Quads)
	for _, f := range c.Faces {
		r, g, b, a := f.Color.Bytes()
		rl.Color4ub(r, g, b, a)
		rl.Normal3f(f.Normal.X(), f.Normal.Y(), f.Normal.Z())
		for i, v := range f.Vertices {
			rl.TexCoord2f(f.UV[i].X(), f.UV[i].Y())
			rl.Vertex3f(v.X(), v.Y(), v.Z())
		}
	}
	rl.End()
	rl.SetTexture(0)
	rl.EndMode3D()
}

func (s *Surface) DrawPoint(p render.PointCall) {
	s.begin3D(p.Camera, p.Model)
	rl.DrawSphere(rl.NewVector3(p.Position.X(), p.Position.Y(), p.Position.Z()), s.pointRadius(p.Size), toColor(p.Color))
	rl.EndMode3D()
}

func (s *Surface) DrawOverlay(o render.Overlay) {
	x, y, w, h := o.PixelBox(s.width, s.height)
	rl.DrawRectangle(int32(x), int32(y), int32(math32.Ceil(w)), int32(math32.Ceil(h)), toColor(o.BoxColor))

	if o.Text != s.textStr {
		s.setText(o.Text)
	}
	if s.textTex.ID == 0 {
		return
	}
	tx, ty := o.PixelText(s.width, s.height)
	rl.DrawTexture(s.textTex, int32(tx), int32(ty)-int32(s.text.Ascent()), toColor(o.TextColor))
}

func (s *Surface) Present() {
	if s.HUD != nil {
		s.HUD()
	}
	if s.drawing {
		rl.EndDrawing()
		s.drawing = false
	}
}

// setText re-rasterizes the status bitmap. Sizes change with the text, so the texture is
// replaced rather than updated in place.
func (s *Surface) setText(text string) {
	s.textStr = text
	if s.textTex.ID != 0 {
		rl.UnloadTexture(s.textTex)
		s.textTex = rl.Texture2D{}
	}
	img := s.text.Render(text)
	if img == nil {
		return
	}
	im := rl.NewImageFromImage(img)
	s.textTex = rl.LoadTextureFromImage(im)
	rl.UnloadImage(im)
}

// begin3D enters raylib's 3D mode, then replaces its matrices with the renderer's camera:
// raylib derives the aspect from the window, while the scene is projected at 1:1.
func (s *Surface) begin3D(cam render.Camera, model mgl32.Mat4) {
	rl.BeginMode3D(rl.Camera3D{
		Position:   rl.NewVector3(0, 0, render.CameraDistance),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       render.FovYDeg,
		Projection: rl.CameraPerspective,
	})
	rl.DrawRenderBatchActive()
	rl.SetMatrixProjection(toMatrix(cam.Projection))
	rl.SetMatrixModelview(toMatrix(cam.View.Mul4(model)))
}

// pointRadius converts a point size in pixels to a sphere radius at the camera distance.
func (s *Surface) pointRadius(px float32) float32 {
	worldPerPixel := 2 * render.CameraDistance * math32.Tan(mgl32.DegToRad(render.FovYDeg)/2) / float32(s.height)
	return px / 2 * worldPerPixel
}

func toColor(c render.RGBA) rl.Color {
	r, g, b, a := c.Bytes()
	return rl.NewColor(r, g, b, a)
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout, which is also column-major.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
