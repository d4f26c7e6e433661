package render

import "github.com/go-gl/mathgl/mgl32"

// Fixed camera and projection of the viewer. The camera never moves.
const (
	FovYDeg  = 45.0
	Aspect   = 1.0
	NearClip = 0.1
	FarClip  = 100.0
	// CameraDistance is how far the camera backs away from the origin along +Z.
	CameraDistance = 5.0
)

// Camera holds the projection and view matrices of a frame.
type Camera struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
}

// DefaultCamera returns a 45° perspective with a 1:1 aspect, looking down -Z from (0,0,5).
func DefaultCamera() Camera {
	return Camera{
		Projection: mgl32.Perspective(mgl32.DegToRad(FovYDeg), Aspect, NearClip, FarClip),
		View:       mgl32.Translate3D(0, 0, -CameraDistance),
	}
}

var (
	// objectAxis is the rotation axis of the cube, (1,1,0) normalized.
	objectAxis = mgl32.Vec3{1, 1, 0}.Normalize()
	// objectOffset is applied in the rotated frame, so the cube orbits the axis instead of
	// spinning in place.
	objectOffset = mgl32.Vec3{0.5, 0, 0}
)

// ObjectTransform returns the model matrix for a rotation angle in degrees:
// rotate about (1,1,0), then translate by (0.5,0,0) in the rotated frame.
func ObjectTransform(angleDeg float32) mgl32.Mat4 {
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), objectAxis)
	return rot.Mul4(mgl32.Translate3D(objectOffset[0], objectOffset[1], objectOffset[2]))
}
