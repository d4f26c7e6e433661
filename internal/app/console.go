package app

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"cube-viewer/internal/commands"
	"cube-viewer/internal/render"
	"cube-viewer/internal/scene"
)

// DefaultFrameTime is the dt fed to the renderer by the console when -dt is not given.
const DefaultFrameTime = float32(1.0 / 60)

// Console drives an App from text lines without a window. Frames go to a render.Recorder
// so the draw calls of the last frame can be inspected.
type Console struct {
	app *App
	rec *render.Recorder
	reg *commands.Registry
	out io.Writer
}

// NewConsole returns a console writing replies to out.
func NewConsole(a *App, out io.Writer) *Console {
	c := &Console{app: a, rec: &render.Recorder{}, reg: commands.NewRegistry(), out: out}

	c.reg.Register("key", "key <chars>   press each character in turn", nil, c.key)
	c.reg.Register("cmd", "cmd <name>    run a command by name ("+commandList()+")", nil, c.cmd)

	framesFS := flag.NewFlagSet("frames", flag.ContinueOnError)
	framesFS.SetOutput(out)
	n := framesFS.Int("n", 1, "number of frames")
	dt := framesFS.Float64("dt", float64(DefaultFrameTime), "seconds per frame (elapsed pacing only)")
	c.reg.Register("frames", "frames [-n N] [-dt S]   render N frames", framesFS, func([]string) error {
		return c.frames(*n, float32(*dt))
	})

	c.reg.Register("state", "state         print the scene state as YAML", nil, c.state)
	c.reg.Register("ops", "ops           print the draw calls of the last frame", nil, c.ops)
	c.reg.Register("help", "help          list commands", nil, c.help)
	return c
}

// Recorder returns the surface the console renders to.
func (c *Console) Recorder() *render.Recorder {
	return c.rec
}

// Exec runs one console line. Blank lines and comments are ignored.
func (c *Console) Exec(line string) error {
	args, ok := commands.Parse(line)
	if !ok {
		return nil
	}
	return c.reg.Execute(args)
}

// Run executes lines from in until EOF or ctx is done. A failing line is reported on out
// and does not stop the console. Cancelling ctx returns at once even while waiting for input;
// the reader goroutine then exits with the next line or when in is closed.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		done <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			return err
		case line := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.Exec(line); err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
			}
		}
	}
}

func (c *Console) key(args []string) error {
	keys := strings.Join(args, "")
	if keys == "" {
		return fmt.Errorf("key: no characters given")
	}
	for _, r := range keys {
		if !c.app.HandleKey(r) {
			fmt.Fprintf(c.out, "%q: unbound\n", r)
			continue
		}
		fmt.Fprintln(c.out, c.app.State.StatusText())
	}
	return nil
}

func (c *Console) cmd(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cmd: want one command name")
	}
	cmd, err := scene.ParseCommand(args[0])
	if err != nil {
		return err
	}
	if err := c.app.Exec(cmd); err != nil {
		return err
	}
	fmt.Fprintln(c.out, c.app.State.StatusText())
	return nil
}

func (c *Console) frames(n int, dt float32) error {
	if n < 1 {
		return fmt.Errorf("frames: -n must be at least 1")
	}
	if dt < 0 {
		return fmt.Errorf("frames: -dt must not be negative")
	}
	for i := 0; i < n; i++ {
		c.app.Frame(c.rec, dt)
	}
	fmt.Fprintf(c.out, "frames %d  t %f\n", c.rec.Frames, c.app.State.BezierT())
	return nil
}

func (c *Console) state([]string) error {
	snap, err := c.app.Snapshot()
	if err != nil {
		return err
	}
	out, err := snap.YAML()
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, out)
	return nil
}

func (c *Console) ops([]string) error {
	if len(c.rec.Ops) == 0 {
		fmt.Fprintln(c.out, "no frame rendered yet")
		return nil
	}
	for _, op := range c.rec.Ops {
		switch op.Kind {
		case render.OpClear:
			r, g, b, _ := op.Clear.Bytes()
			fmt.Fprintf(c.out, "clear   %d %d %d\n", r, g, b)
		case render.OpCube:
			fmt.Fprintf(c.out, "cube    faces %d  lighting %v  texture %v\n",
				len(op.Cube.Faces), op.Cube.Light.Enabled, op.Cube.Texture.Enabled)
		case render.OpPoint:
			p := op.Point.Position
			fmt.Fprintf(c.out, "point   %.4f %.4f %.4f\n", p.X(), p.Y(), p.Z())
		case render.OpOverlay:
			fmt.Fprintf(c.out, "overlay %q\n", op.Overlay.Text)
		case render.OpPresent:
			fmt.Fprintln(c.out, "present")
		}
	}
	return nil
}

func (c *Console) help([]string) error {
	for _, name := range c.reg.Names() {
		cmd, _ := c.reg.Lookup(name)
		fmt.Fprintln(c.out, cmd.Usage)
	}
	return nil
}

func commandList() string {
	names := make([]string, 0, len(scene.Commands()))
	for _, cmd := range scene.Commands() {
		names = append(names, cmd.String())
	}
	return strings.Join(names, ", ")
}
