package curve

import (
	"fmt"

	"github.com/chewxy/math32"
)

const (
	// FrameStep is the parameter increment per rendered frame in ModeFrame.
	FrameStep = 0.01
	// DefaultRate is the parameter increment per second in ModeElapsed (FrameStep at 60 FPS).
	DefaultRate = 0.6
	// MaxDelta caps the frame duration used by ModeElapsed, in seconds.
	MaxDelta = 0.25
)

// Mode selects how the animation parameter advances.
type Mode string

const (
	// ModeFrame adds FrameStep on every rendered frame. Speed follows the frame rate.
	ModeFrame Mode = "frame"
	// ModeElapsed adds Rate × dt, so speed follows wall-clock time.
	ModeElapsed Mode = "elapsed"
)

// ParseMode accepts "frame" or "elapsed". The empty string means ModeFrame.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFrame:
		return ModeFrame, nil
	case ModeElapsed:
		return ModeElapsed, nil
	}
	return "", fmt.Errorf("unknown animation mode %q (use frame or elapsed)", s)
}

// Advance adds step to t and restarts the loop at 0 once t reaches 1.
func Advance(t, step float32) float32 {
	t += step
	if t >= 1 {
		t = 0
	}
	return t
}

// Pacer decides the per-frame step for the animation parameter.
type Pacer struct {
	Mode Mode
	Step float32 // per frame, ModeFrame
	Rate float32 // per second, ModeElapsed
}

// NewPacer returns a pacer in ModeFrame with the 0.01 step.
func NewPacer() Pacer {
	return Pacer{Mode: ModeFrame, Step: FrameStep, Rate: DefaultRate}
}

// Validate reports pacing that would leave the point stuck at the start of the curve:
// any single step must stay below 1, or Advance wraps it straight back to 0.
func (p Pacer) Validate() error {
	switch p.Mode {
	case ModeFrame:
		if p.Step <= 0 || p.Step >= 1 {
			return fmt.Errorf("animation step %v must be in (0,1)", p.Step)
		}
	case ModeElapsed:
		if p.Rate <= 0 || p.Rate*MaxDelta >= 1 {
			return fmt.Errorf("animation rate %v must be in (0,%v)", p.Rate, 1/MaxDelta)
		}
	default:
		return fmt.Errorf("unknown animation mode %q", p.Mode)
	}
	return nil
}

// Next returns t advanced by one frame that took dt seconds.
// ModeFrame ignores dt; ModeElapsed clamps dt to [0, MaxDelta].
func (p Pacer) Next(t, dt float32) float32 {
	if p.Mode == ModeElapsed {
		dt = math32.Max(0, math32.Min(dt, MaxDelta))
		return Advance(t, p.Rate*dt)
	}
	return Advance(t, p.Step)
}
