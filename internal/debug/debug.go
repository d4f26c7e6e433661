package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws an optional diagnostic readout in the top-right corner. All lines are off by default.
type Debug struct {
	ShowFPS      bool
	ShowState    bool
	ShowMemAlloc bool

	// State returns the line shown when ShowState is set, e.g. angle and curve parameter.
	State func() string

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Lines returns the text of the readout, recomputing it every updateInterval frames.
// fps is the frame rate to report.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	if d.frameCount%updateInterval != 0 && d.lines != nil {
		return d.lines
	}
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", fps))
	}
	if d.ShowState && d.State != nil {
		d.lines = append(d.lines, d.State())
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.lines == nil {
		d.lines = []string{}
	}
	return d.lines
}

// Draw renders the enabled lines right-aligned at the top-right in green.
// Call inside the drawing block, after the scene.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowState && !d.ShowMemAlloc {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines(rl.GetFPS()) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
