package primitives

import "github.com/go-gl/mathgl/mgl32"

// faceUV maps the four corners of every face onto the full texture. v grows downwards,
// matching image rows, so the image appears upright.
var faceUV = [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cube returns the six faces of an axis-aligned cube of the given edge length centered at the
// origin. size 0 means 1, matching the unit cube the viewer draws.
func Cube(size float32) []Face {
	if size == 0 {
		size = 1
	}
	h := size / 2
	faces := []Face{
		{Name: "front", Normal: mgl32.Vec3{0, 0, 1}, Vertices: [4]mgl32.Vec3{
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		}},
		{Name: "back", Normal: mgl32.Vec3{0, 0, -1}, Vertices: [4]mgl32.Vec3{
			{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h},
		}},
		{Name: "left", Normal: mgl32.Vec3{-1, 0, 0}, Vertices: [4]mgl32.Vec3{
			{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h},
		}},
		{Name: "right", Normal: mgl32.Vec3{1, 0, 0}, Vertices: [4]mgl32.Vec3{
			{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h},
		}},
		{Name: "top", Normal: mgl32.Vec3{0, 1, 0}, Vertices: [4]mgl32.Vec3{
			{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h},
		}},
		{Name: "bottom", Normal: mgl32.Vec3{0, -1, 0}, Vertices: [4]mgl32.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h},
		}},
	}
	for i := range faces {
		faces[i].UV = faceUV
	}
	return faces
}
