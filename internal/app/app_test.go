package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"cube-viewer/internal/config"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/render"
	"cube-viewer/internal/scene"
)

func newApp(t *testing.T, cfg config.Config) (*App, *logger.Logger) {
	t.Helper()
	log := logger.New("")
	a, err := New(cfg, log, 3)
	if err != nil {
		t.Fatal(err)
	}
	return a, log
}

func hasLine(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func TestNewWarnsOnSharedKey(t *testing.T) {
	_, log := newApp(t, config.Default())
	if !hasLine(log.Lines(), `warning: key 'r' is bound to rotate, setRed`) {
		t.Errorf("no conflict warning in %q", log.Lines())
	}

	cfg := config.Default()
	cfg.Keys.Red = "e"
	_, log = newApp(t, cfg)
	if hasLine(log.Lines(), "warning") {
		t.Errorf("unexpected warning in %q", log.Lines())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.Mode = "vsync"
	if _, err := New(cfg, logger.New(""), 0); err == nil {
		t.Error("bad animation mode accepted")
	}
}

func TestHandleKey(t *testing.T) {
	a, log := newApp(t, config.Default())

	if !a.HandleKey('r') {
		t.Fatal("'r' not handled")
	}
	if a.State.RotationDeg() != scene.RotationStep || a.State.CubeColor() != scene.Red {
		t.Errorf("after 'r': angle %v color %v", a.State.RotationDeg(), a.State.CubeColor())
	}
	if !hasLine(log.Lines(), "Object rotated. Angle: 5.000000") {
		t.Errorf("status not logged: %q", log.Lines())
	}
	if a.HandleKey('z') {
		t.Error("'z' reported as handled")
	}
}

func TestFrameUsesConfiguredPacing(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.Mode = "elapsed"
	cfg.Animation.Rate = 0.5
	a, _ := newApp(t, cfg)
	_ = a.Exec(scene.ToggleCurve)

	rec := &render.Recorder{}
	a.Frame(rec, 0.2)
	if got := a.State.BezierT(); got < 0.0999 || got > 0.1001 {
		t.Errorf("t = %v, want 0.1", got)
	}
	op, ok := rec.Find(render.OpCube)
	if !ok || op.Cube.Texture.Handle != 3 {
		t.Errorf("cube op = %+v", op.Cube.Texture)
	}
}

func TestSnapshot(t *testing.T) {
	a, _ := newApp(t, config.Default())
	_ = a.Exec(scene.ToggleTexture)
	_ = a.Exec(scene.SetGreen)
	_ = a.Exec(scene.Rotate)

	s, err := a.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	want := Snapshot{
		RotationDeg:     5,
		LightingEnabled: true,
		TextureEnabled:  true,
		CubeColor:       scene.Green,
		ColorName:       "green",
		StatusText:      "Object rotated. Angle: 5.000000",
	}
	if s != want {
		t.Errorf("snapshot = %+v, want %+v", s, want)
	}
	if got := Describe(s); got != "angle 5.0  t 0.00  green" {
		t.Errorf("Describe = %q", got)
	}
}

func TestConsoleScript(t *testing.T) {
	a, _ := newApp(t, config.Default())
	var out bytes.Buffer
	c := NewConsole(a, &out)

	script := `
# show the curve and advance it
key c
frames -n 3
state
`
	if err := c.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Curve toggled: ON\n") {
		t.Errorf("output missing status:\n%s", out.String())
	}
	if c.Recorder().Frames != 3 {
		t.Errorf("frames = %d, want 3", c.Recorder().Frames)
	}
	if got := c.Recorder().Kinds(); got != "clear cube point overlay present" {
		t.Errorf("ops = %q", got)
	}

	yamlStart := strings.Index(out.String(), "rotation_deg:")
	if yamlStart < 0 {
		t.Fatalf("no state output:\n%s", out.String())
	}
	var s Snapshot
	if err := yaml.Unmarshal([]byte(out.String()[yamlStart:]), &s); err != nil {
		t.Fatal(err)
	}
	if !s.CurveVisible || s.BezierT < 0.0299 || s.BezierT > 0.0301 {
		t.Errorf("state = %+v", s)
	}
}

func TestConsoleCommands(t *testing.T) {
	a, _ := newApp(t, config.Default())
	var out bytes.Buffer
	c := NewConsole(a, &out)

	if err := c.Exec("cmd toggleLighting"); err != nil {
		t.Fatal(err)
	}
	if a.State.LightingEnabled() {
		t.Error("lighting still on")
	}
	if err := c.Exec("cmd spin"); err == nil {
		t.Error("unknown command accepted")
	}
	if err := c.Exec("frames -n 0"); err == nil {
		t.Error("zero frames accepted")
	}
	if err := c.Exec("key"); err == nil {
		t.Error("empty key accepted")
	}

	out.Reset()
	if err := c.Exec("ops"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "no frame") {
		t.Errorf("ops before any frame: %q", out.String())
	}

	out.Reset()
	_ = c.Exec("frames")
	out.Reset()
	if err := c.Exec("ops"); err != nil {
		t.Fatal(err)
	}
	want := "clear   0 0 0\ncube    faces 6  lighting false  texture false\noverlay \"Lighting toggled: OFF\"\npresent\n"
	if out.String() != want {
		t.Errorf("ops =\n%s\nwant\n%s", out.String(), want)
	}

	out.Reset()
	_ = c.Exec("help")
	for _, name := range []string{"key", "cmd", "frames", "state", "ops", "help"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help missing %q", name)
		}
	}
}

func TestConsoleRunStopsOnCancel(t *testing.T) {
	a, _ := newApp(t, config.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := NewConsole(a, &out).Run(ctx, strings.NewReader("key c\n")); err == nil {
		t.Error("Run ignored a cancelled context")
	}
	if a.State.CurveVisible() {
		t.Error("line executed after cancel")
	}
}

func TestConsoleRunReturnsWhileWaitingForInput(t *testing.T) {
	a, _ := newApp(t, config.Default())
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- NewConsole(a, io.Discard).Run(ctx, pr)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run still waiting on input after cancel")
	}
}

func TestConsoleRunReportsReadError(t *testing.T) {
	a, _ := newApp(t, config.Default())
	pr, pw := io.Pipe()
	boom := errors.New("stdin closed")
	go func() {
		_, _ = pw.Write([]byte("key c\n"))
		pw.CloseWithError(boom)
	}()
	var out bytes.Buffer
	if err := NewConsole(a, &out).Run(context.Background(), pr); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want %v", err, boom)
	}
	if !a.State.CurveVisible() {
		t.Error("line before the read error was not executed")
	}
}
