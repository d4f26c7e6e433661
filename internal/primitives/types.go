package primitives

import "github.com/go-gl/mathgl/mgl32"

// Face is one flat quadrilateral of a mesh. Vertices are counter-clockwise when viewed from
// the side the Normal points to; UV holds the texture coordinate of each vertex.
type Face struct {
	Name     string
	Normal   mgl32.Vec3
	Vertices [4]mgl32.Vec3
	UV       [4]mgl32.Vec2
}
