package app

import (
	"fmt"
	"strings"

	"cube-viewer/internal/config"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/render"
	"cube-viewer/internal/scene"
)

// App owns the scene state and routes input and frames through it. It is not safe for
// concurrent use; the display loop or the console drives it from one goroutine.
type App struct {
	State    *scene.State
	Keys     *scene.KeyMap
	Renderer *render.Renderer

	log *logger.Logger
}

// New builds the app from cfg. tex is the handle of the uploaded cube texture (0 for none).
func New(cfg config.Config, log *logger.Logger, tex render.TextureHandle) (*App, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	pacer, err := cfg.Pacer()
	if err != nil {
		return nil, err
	}
	r := render.New(tex)
	r.Pacer = pacer

	a := &App{
		State:    scene.New(),
		Keys:     scene.NewKeyMap(bindings),
		Renderer: r,
		log:      log,
	}
	for _, key := range a.Keys.Conflicts() {
		a.log.Logf("warning: key %q is bound to %s", key, joinCommands(a.Keys.Lookup(key)))
	}
	a.log.Logf("animation: %s pacing (step %v, rate %v/s)", pacer.Mode, pacer.Step, pacer.Rate)
	return a, nil
}

// HandleKey dispatches every command bound to r. It reports whether r was bound.
func (a *App) HandleKey(r rune) bool {
	handled, err := a.Keys.Dispatch(a.State, r)
	if err != nil {
		a.log.Logf("key %q: %v", r, err)
		return handled
	}
	if handled {
		a.log.Logf("key %q (%s): %s", r, joinCommands(a.Keys.Lookup(r)), a.State.StatusText())
	}
	return handled
}

// Exec applies a single command regardless of key bindings.
func (a *App) Exec(cmd scene.Command) error {
	if err := a.State.Apply(cmd); err != nil {
		return err
	}
	a.log.Logf("%s: %s", cmd, a.State.StatusText())
	return nil
}

// Frame renders one full frame to surf. dt is the previous frame's duration in seconds.
func (a *App) Frame(surf render.Surface, dt float32) {
	a.Renderer.Render(surf, a.State, dt)
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() (Snapshot, error) {
	return TakeSnapshot(a.State)
}

func joinCommands(cmds []scene.Command) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// Describe returns a one-line summary of s, used by the debug readout.
func Describe(s Snapshot) string {
	return fmt.Sprintf("angle %.1f  t %.2f  %s", s.RotationDeg, s.BezierT, s.ColorName)
}
