package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"cube-viewer/internal/curve"
	"cube-viewer/internal/primitives"
	"cube-viewer/internal/scene"
)

// PointSize is the on-screen size of the animated curve point, in pixels.
const PointSize = 5

// TextureHandle identifies a texture uploaded by the display surface. 0 means none.
type TextureHandle uint32

// TextureBinding says whether the cube is textured on this frame and with what.
type TextureBinding struct {
	Enabled bool
	Handle  TextureHandle
}

// ShadedFace is a cube face with its final, lit color.
type ShadedFace struct {
	primitives.Face
	Color RGBA
}

// CubeCall carries everything needed to draw the cube: camera, object transform, the
// light and material the face colors were computed with, and the texture binding.
type CubeCall struct {
	Camera   Camera
	Model    mgl32.Mat4
	Light    Light
	Material Material
	Texture  TextureBinding
	Faces    []ShadedFace
}

// PointCall draws one point in the object's frame.
type PointCall struct {
	Camera   Camera
	Model    mgl32.Mat4
	Position mgl32.Vec3
	Color    RGBA
	Size     float32
}

// Surface is the display the renderer draws to. Calls arrive in pipeline order and a frame
// always ends with Present. Implementations must not keep the Faces slice past DrawCube.
type Surface interface {
	Clear(c RGBA)
	DrawCube(c CubeCall)
	DrawPoint(p PointCall)
	DrawOverlay(o Overlay)
	Present()
}

// Renderer turns the scene state into one complete frame. Every call is a full redraw.
type Renderer struct {
	Camera   Camera
	Light    Light
	Material Material
	Curve    curve.Quadratic
	Pacer    curve.Pacer
	Texture  TextureHandle

	faces  []primitives.Face
	shaded []ShadedFace
}

// New returns a renderer with the fixed camera, light, material and curve of the viewer.
// tex is the handle handed out by the texture provider (0 if there is none).
func New(tex TextureHandle) *Renderer {
	faces := primitives.Cube(1)
	return &Renderer{
		Camera:   DefaultCamera(),
		Light:    DefaultLight(),
		Material: DefaultMaterial(),
		Curve:    curve.Default,
		Pacer:    curve.NewPacer(),
		Texture:  tex,
		faces:    faces,
		shaded:   make([]ShadedFace, len(faces)),
	}
}

// Render draws st to surf in fixed order: clear, cube (camera, light, material, texture and
// object transform resolved into the call), curve point, status overlay, present.
// When the curve is visible the Bézier parameter is advanced after its point is drawn;
// dt is the duration of the previous frame in seconds and only matters in elapsed pacing.
func (r *Renderer) Render(surf Surface, st *scene.State, dt float32) {
	surf.Clear(Black)

	cam := r.Camera
	light := r.Light
	light.Enabled = st.LightingEnabled()
	mat := r.Material
	tex := TextureBinding{Enabled: st.TextureEnabled(), Handle: r.Texture}

	model := ObjectTransform(st.RotationDeg())
	normalMat := cam.View.Mul4(model).Mat3()
	base := FromScene(st.CubeColor())
	for i, f := range r.faces {
		n := normalMat.Mul3x1(f.Normal)
		r.shaded[i] = ShadedFace{Face: f, Color: Shade(light, mat, n, base)}
	}
	surf.DrawCube(CubeCall{
		Camera:   cam,
		Model:    model,
		Light:    light,
		Material: mat,
		Texture:  tex,
		Faces:    r.shaded,
	})

	if st.CurveVisible() {
		t := st.BezierT()
		surf.DrawPoint(PointCall{
			Camera:   cam,
			Model:    model,
			Position: r.Curve.Eval(t),
			Color:    Red,
			Size:     PointSize,
		})
		st.SetBezierT(r.Pacer.Next(t, dt))
	}

	surf.DrawOverlay(StatusOverlay(st.StatusText()))
	surf.Present()
}
