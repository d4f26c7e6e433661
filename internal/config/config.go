package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"cube-viewer/internal/curve"
	"cube-viewer/internal/scene"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds viewer preferences. Anything left out of the file keeps its Default value.
type Config struct {
	Window    Window    `yaml:"window"`
	Animation Animation `yaml:"animation"`
	Texture   Texture   `yaml:"texture"`
	Overlay   Overlay   `yaml:"overlay"`
	Keys      Keys      `yaml:"keys"`
	Debug     Debug     `yaml:"debug"`
	LogPath   string    `yaml:"log_path"`
}

// Window configures the display surface. TargetFPS 0 redraws as fast as the host allows.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Animation configures how the curve point advances: "frame" adds Step per frame,
// "elapsed" adds Rate per second.
type Animation struct {
	Mode string  `yaml:"mode"`
	Step float32 `yaml:"step"`
	Rate float32 `yaml:"rate"`
}

// Texture selects the cube texture. An empty Path uses a generated checkerboard.
type Texture struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// Overlay selects the status line font. An empty Font uses the embedded Go Regular face.
type Overlay struct {
	Font string  `yaml:"font"`
	Size float64 `yaml:"size"`
}

// Keys binds each command to one character. An empty string leaves the command unbound.
type Keys struct {
	Curve    string `yaml:"curve"`
	Rotate   string `yaml:"rotate"`
	Lighting string `yaml:"lighting"`
	Texture  string `yaml:"texture"`
	Red      string `yaml:"red"`
	Green    string `yaml:"green"`
	Blue     string `yaml:"blue"`
	White    string `yaml:"white"`
}

// Debug toggles the diagnostic readout in the top-right corner.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowState    bool `yaml:"show_state"`
	ShowMemAlloc bool `yaml:"show_mem_alloc"`
}

// Default returns the built-in settings: an 800x600 window redrawn without
// throttling, frame-paced animation and the classic key bindings (red shares 'r').
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "3D OpenGL Simulation with Text Box",
		},
		Animation: Animation{
			Mode: string(curve.ModeFrame),
			Step: curve.FrameStep,
			Rate: curve.DefaultRate,
		},
		Texture: Texture{Size: 256},
		Overlay: Overlay{Size: 18},
		Keys: Keys{
			Curve:    "c",
			Rotate:   "r",
			Lighting: "l",
			Texture:  "t",
			Red:      "r",
			Green:    "g",
			Blue:     "b",
			White:    "w",
		},
		LogPath: "logs/viewer.txt",
	}
}

// Load reads the YAML file at path on top of Default. A missing file is not an error;
// a malformed or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS)
	}
	if _, err := c.Pacer(); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Pacer returns the animation pacing described by the Animation section.
func (c Config) Pacer() (curve.Pacer, error) {
	mode, err := curve.ParseMode(c.Animation.Mode)
	if err != nil {
		return curve.Pacer{}, err
	}
	p := curve.Pacer{Mode: mode, Step: c.Animation.Step, Rate: c.Animation.Rate}
	if err := p.Validate(); err != nil {
		return curve.Pacer{}, err
	}
	return p, nil
}

// Bindings converts the Keys section into per-command runes for scene.NewKeyMap.
func (c Config) Bindings() (map[scene.Command]rune, error) {
	entries := []struct {
		cmd scene.Command
		key string
	}{
		{scene.ToggleCurve, c.Keys.Curve},
		{scene.Rotate, c.Keys.Rotate},
		{scene.ToggleLighting, c.Keys.Lighting},
		{scene.ToggleTexture, c.Keys.Texture},
		{scene.SetRed, c.Keys.Red},
		{scene.SetGreen, c.Keys.Green},
		{scene.SetBlue, c.Keys.Blue},
		{scene.SetWhite, c.Keys.White},
	}
	out := make(map[scene.Command]rune, len(entries))
	for _, e := range entries {
		if e.key == "" {
			continue
		}
		if utf8.RuneCountInString(e.key) != 1 {
			return nil, fmt.Errorf("key %q for %s must be a single character", e.key, e.cmd)
		}
		r, _ := utf8.DecodeRuneInString(e.key)
		out[e.cmd] = r
	}
	return out, nil
}
