package graphics

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window opened by Run.
type Options struct {
	Width  int
	Height int
	Title  string
	// TargetFPS throttles the loop when positive. 0 redraws as fast as the driver allows.
	TargetFPS int
}

// Run opens the window, calls setup once the graphics context exists (texture uploads go there),
// then calls frame until the window is closed, and finally teardown while the context is still alive. frame is expected to draw one full frame
// through a Surface, which begins and ends the raylib drawing block.
// raylib must stay on the thread that created the window, so Run locks the calling goroutine
// to its OS thread and must be called from main.
func Run(opts Options, setup func() error, frame func(dt float32), teardown func()) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via window button only
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	if teardown != nil {
		defer teardown()
	}
	if setup != nil {
		if err := setup(); err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() {
		frame(rl.GetFrameTime())
	}
	return nil
}

// PollRunes calls fn for every character typed since the previous frame, in order.
func PollRunes(fn func(r rune)) {
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		fn(rune(c))
	}
}
