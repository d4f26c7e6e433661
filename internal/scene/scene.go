package scene

import "fmt"

const (
	// RotationStep is how many degrees one Rotate command adds to the angle.
	RotationStep = 5.0
	// HelpText is the status shown before the first command.
	HelpText = "Use 'l' to toggle lighting, 't' to toggle texture, 'r' to rotate, 'c' to toggle curve, 'rgb' to change color."
)

// Color is a linear RGB triple, each channel in [0,1].
type Color struct {
	R, G, B float32
}

// Name returns the palette name of c, or "custom" for a color outside the palette.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "custom"
}

// Palette entries reachable through the color commands. No other cube color can be set.
var (
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// State is the mutable record the renderer reads every frame: toggles, rotation angle,
// cube color, Bézier animation parameter and the status line.
// It is owned by one goroutine and changed only through Apply (commands) and SetBezierT (renderer).
type State struct {
	angle     float32
	lighting  bool
	texturing bool
	curve     bool
	color     Color
	t         float32
	status    string
}

// New returns the state of the first rendered frame: lighting on, texture and curve off,
// white cube, angle 0, t 0 and the help text as status.
func New() *State {
	return &State{
		lighting: true,
		color:    White,
		status:   HelpText,
	}
}

// RotationDeg returns the cumulative rotation angle in degrees. It is never wrapped.
func (s *State) RotationDeg() float32 { return s.angle }

// LightingEnabled reports whether the light source is on.
func (s *State) LightingEnabled() bool { return s.lighting }

// TextureEnabled reports whether the cube is textured.
func (s *State) TextureEnabled() bool { return s.texturing }

// CurveVisible reports whether the Bézier point is drawn and animated.
func (s *State) CurveVisible() bool { return s.curve }

// CubeColor returns the current palette color of the cube.
func (s *State) CubeColor() Color { return s.color }

// BezierT returns the animation parameter in [0,1].
func (s *State) BezierT() float32 { return s.t }

// ColorName returns the palette name of the cube color.
func (s *State) ColorName() string { return s.color.Name() }

// StatusText returns the description of the most recent command.
func (s *State) StatusText() string { return s.status }

// SetBezierT stores the animation parameter. The renderer calls it after advancing the curve.
func (s *State) SetBezierT(t float32) { s.t = t }

// Apply performs exactly one mutation for cmd and updates the status line where one is defined.
// Color commands leave the status untouched.
func (s *State) Apply(cmd Command) error {
	switch cmd {
	case ToggleCurve:
		s.curve = !s.curve
		s.status = "Curve toggled: " + onOff(s.curve)
	case Rotate:
		s.angle += RotationStep
		s.status = fmt.Sprintf("Object rotated. Angle: %f", s.angle)
	case ToggleLighting:
		s.lighting = !s.lighting
		s.status = "Lighting toggled: " + onOff(s.lighting)
	case ToggleTexture:
		s.texturing = !s.texturing
		s.status = "Texture toggled: " + onOff(s.texturing)
	case SetRed:
		s.color = Red
	case SetGreen:
		s.color = Green
	case SetBlue:
		s.color = Blue
	case SetWhite:
		s.color = White
	default:
		return fmt.Errorf("unknown command %d", int(cmd))
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
