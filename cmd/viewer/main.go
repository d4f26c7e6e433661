package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/image/font"

	"cube-viewer/internal/app"
	"cube-viewer/internal/config"
	"cube-viewer/internal/debug"
	"cube-viewer/internal/env"
	"cube-viewer/internal/fonts"
	"cube-viewer/internal/graphics"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/overlay"
	"cube-viewer/internal/texture"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}

	cfgPath := flag.String("config", env.Get("VIEWER_CONFIG", config.DefaultPath), "path to the YAML config file")
	headless := flag.Bool("headless", false, "read console commands from stdin instead of opening a window")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *writeConfig {
		if err := config.Save(*cfgPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log := logger.New(cfg.LogPath)
	log.Logf("config: %s", *cfgPath)

	if *headless {
		err = runHeadless(cfg, log)
	} else {
		err = runWindow(cfg, log)
	}
	if err != nil {
		log.Logf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "%v (log: %s)\n", err, log.Path())
		os.Exit(1)
	}
}

func runHeadless(cfg config.Config, log *logger.Logger) error {
	a, err := app.New(cfg, log, 0)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.NewConsole(a, os.Stdout).Run(ctx, os.Stdin)
}

func runWindow(cfg config.Config, log *logger.Logger) error {
	img, err := texture.LoadOrChecker(cfg.Texture.Path, cfg.Texture.Size)
	if err != nil {
		log.Logf("%v; using checkerboard", err)
	}
	var face font.Face
	fontPath, err := fonts.Resolve(cfg.Overlay.Font, fonts.BaseDirs())
	if err == nil {
		face, err = overlay.LoadFace(fontPath, cfg.Overlay.Size)
	}
	if err != nil {
		log.Logf("%v; using basic font", err)
	}

	surf := graphics.NewSurface(cfg.Window.Width, cfg.Window.Height, overlay.NewText(face))
	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowState = cfg.Debug.ShowState
	dbg.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	surf.HUD = dbg.Draw

	var a *app.App
	setup := func() error {
		tex := surf.UploadTexture(img)
		log.Logf("texture: %dx%d uploaded", img.Bounds().Dx(), img.Bounds().Dy())
		var err error
		if a, err = app.New(cfg, log, tex); err != nil {
			return err
		}
		dbg.State = func() string {
			s, err := a.Snapshot()
			if err != nil {
				return err.Error()
			}
			return app.Describe(s)
		}
		return nil
	}
	frame := func(dt float32) {
		graphics.PollRunes(func(r rune) { a.HandleKey(r) })
		a.Frame(surf, dt)
	}

	opts := graphics.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	}
	return graphics.Run(opts, setup, frame, surf.Unload)
}
