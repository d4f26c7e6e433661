package scene

import (
	"fmt"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if !s.LightingEnabled() || s.TextureEnabled() || s.CurveVisible() {
		t.Fatalf("toggles = lighting %v texture %v curve %v, want true false false",
			s.LightingEnabled(), s.TextureEnabled(), s.CurveVisible())
	}
	if s.CubeColor() != White {
		t.Errorf("color = %v, want white", s.CubeColor())
	}
	if s.RotationDeg() != 0 || s.BezierT() != 0 {
		t.Errorf("angle %v t %v, want 0 0", s.RotationDeg(), s.BezierT())
	}
	if s.StatusText() != HelpText {
		t.Errorf("status = %q", s.StatusText())
	}
}

func TestTogglePairsRestore(t *testing.T) {
	tests := []struct {
		cmd Command
		get func(*State) bool
	}{
		{ToggleLighting, (*State).LightingEnabled},
		{ToggleTexture, (*State).TextureEnabled},
		{ToggleCurve, (*State).CurveVisible},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			s := New()
			before := tt.get(s)
			if err := s.Apply(tt.cmd); err != nil {
				t.Fatal(err)
			}
			if tt.get(s) == before {
				t.Fatalf("first %s did not flip", tt.cmd)
			}
			if err := s.Apply(tt.cmd); err != nil {
				t.Fatal(err)
			}
			if tt.get(s) != before {
				t.Fatalf("second %s = %v, want %v", tt.cmd, tt.get(s), before)
			}
		})
	}
}

func TestToggleStatusText(t *testing.T) {
	s := New()
	steps := []struct {
		cmd  Command
		want string
	}{
		{ToggleCurve, "Curve toggled: ON"},
		{ToggleCurve, "Curve toggled: OFF"},
		{ToggleLighting, "Lighting toggled: OFF"},
		{ToggleLighting, "Lighting toggled: ON"},
		{ToggleTexture, "Texture toggled: ON"},
	}
	for i, st := range steps {
		if err := s.Apply(st.cmd); err != nil {
			t.Fatal(err)
		}
		if s.StatusText() != st.want {
			t.Errorf("step %d (%s): status %q, want %q", i, st.cmd, s.StatusText(), st.want)
		}
	}
}

func TestRotateAccumulates(t *testing.T) {
	s := New()
	const n = 100
	for i := 0; i < n; i++ {
		if err := s.Apply(Rotate); err != nil {
			t.Fatal(err)
		}
	}
	if s.RotationDeg() != n*RotationStep {
		t.Fatalf("angle = %v, want %v", s.RotationDeg(), n*RotationStep)
	}
	want := fmt.Sprintf("Object rotated. Angle: %f", float32(n*RotationStep))
	if s.StatusText() != want {
		t.Errorf("status = %q, want %q", s.StatusText(), want)
	}
	if s.StatusText() != "Object rotated. Angle: 500.000000" {
		t.Errorf("status = %q", s.StatusText())
	}
}

func TestPaletteClosure(t *testing.T) {
	palette := map[Color]bool{White: true, Red: true, Green: true, Blue: true}
	want := map[Command]Color{SetRed: Red, SetGreen: Green, SetBlue: Blue, SetWhite: White}
	s := New()
	for _, cmd := range Commands() {
		if err := s.Apply(cmd); err != nil {
			t.Fatal(err)
		}
		if !palette[s.CubeColor()] {
			t.Fatalf("after %s color %v is outside the palette", cmd, s.CubeColor())
		}
		if c, ok := want[cmd]; ok && s.CubeColor() != c {
			t.Errorf("%s: color %v, want %v", cmd, s.CubeColor(), c)
		}
	}
}

func TestColorCommandsKeepStatus(t *testing.T) {
	s := New()
	_ = s.Apply(ToggleCurve)
	_ = s.Apply(SetBlue)
	if s.StatusText() != "Curve toggled: ON" {
		t.Errorf("status = %q", s.StatusText())
	}
}

func TestApplyUnknown(t *testing.T) {
	s := New()
	if err := s.Apply(Command(42)); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestParseCommandRoundTrip(t *testing.T) {
	for _, cmd := range Commands() {
		got, err := ParseCommand(cmd.String())
		if err != nil || got != cmd {
			t.Errorf("ParseCommand(%q) = %v, %v", cmd.String(), got, err)
		}
	}
	if _, err := ParseCommand("explode"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestColorName(t *testing.T) {
	tests := []struct {
		c    Color
		name string
	}{
		{White, "white"},
		{Red, "red"},
		{Green, "green"},
		{Blue, "blue"},
		{Color{0.5, 0.5, 0.5}, "custom"},
	}
	for _, tt := range tests {
		if got := tt.c.Name(); got != tt.name {
			t.Errorf("%v.Name() = %q, want %q", tt.c, got, tt.name)
		}
	}
	st := New()
	_ = st.Apply(SetBlue)
	if st.ColorName() != "blue" {
		t.Errorf("ColorName = %q, want blue", st.ColorName())
	}
}
