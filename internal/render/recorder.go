package render

import "strings"

// Op names recorded by Recorder, one per Surface method.
const (
	OpClear   = "clear"
	OpCube    = "cube"
	OpPoint   = "point"
	OpOverlay = "overlay"
	OpPresent = "present"
)

// Op is one recorded Surface call. Only the field matching Kind is set.
type Op struct {
	Kind    string
	Clear   RGBA
	Cube    CubeCall
	Point   PointCall
	Overlay Overlay
}

// Recorder is a Surface that keeps the calls of the current frame instead of drawing them.
// It backs the headless console and the renderer tests.
type Recorder struct {
	// Ops holds the calls since the last completed frame, including its Present.
	Ops []Op
	// Frames counts Present calls.
	Frames  int
	pending bool
}

func (r *Recorder) begin() {
	if r.pending {
		return
	}
	r.Ops = r.Ops[:0]
	r.pending = true
}

func (r *Recorder) Clear(c RGBA) {
	r.begin()
	r.Ops = append(r.Ops, Op{Kind: OpClear, Clear: c})
}

func (r *Recorder) DrawCube(c CubeCall) {
	r.begin()
	c.Faces = append([]ShadedFace(nil), c.Faces...)
	r.Ops = append(r.Ops, Op{Kind: OpCube, Cube: c})
}

func (r *Recorder) DrawPoint(p PointCall) {
	r.begin()
	r.Ops = append(r.Ops, Op{Kind: OpPoint, Point: p})
}

func (r *Recorder) DrawOverlay(o Overlay) {
	r.begin()
	r.Ops = append(r.Ops, Op{Kind: OpOverlay, Overlay: o})
}

func (r *Recorder) Present() {
	r.begin()
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
	r.Frames++
	r.pending = false
}

// Kinds returns the op names of the last frame joined by spaces, e.g. "clear cube overlay present".
func (r *Recorder) Kinds() string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Kind
	}
	return strings.Join(names, " ")
}

// Find returns the first recorded op of the given kind.
func (r *Recorder) Find(kind string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == kind {
			return op, true
		}
	}
	return Op{}, false
}
