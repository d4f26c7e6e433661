package curve

import "github.com/go-gl/mathgl/mgl32"

// Quadratic is a quadratic Bézier curve defined by three control points.
type Quadratic struct {
	P0, P1, P2 mgl32.Vec3
}

// Default is the curve animated next to the cube: it starts at the cube's center,
// arcs up through (0.5,1,0) and ends at (1,0,0).
var Default = Quadratic{
	P0: mgl32.Vec3{0, 0, 0},
	P1: mgl32.Vec3{0.5, 1, 0},
	P2: mgl32.Vec3{1, 0, 0},
}

// Eval returns the animated point at t. x and y use the full blend
// (1−t)²·P0 + 2(1−t)t·P1 + t²·P2. z is (1−t)²·P0.z + 2(1−t)t·P2.z, without P1.z
// or a t² term.
// t is not clamped; callers keep it in [0,1].
func (q Quadratic) Eval(t float32) mgl32.Vec3 {
	a, b, c := weights(t)
	return mgl32.Vec3{
		a*q.P0[0] + b*q.P1[0] + c*q.P2[0],
		a*q.P0[1] + b*q.P1[1] + c*q.P2[1],
		a*q.P0[2] + b*q.P2[2],
	}
}

func weights(t float32) (a, b, c float32) {
	u := 1 - t
	return u * u, 2 * u * t, t * t
}
