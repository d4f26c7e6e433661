package app

import (
	"fmt"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"cube-viewer/internal/scene"
)

// Snapshot is a read-only copy of scene.State. Fields are filled from the State getters
// of the same name.
type Snapshot struct {
	RotationDeg     float32     `yaml:"rotation_deg"`
	LightingEnabled bool        `yaml:"lighting"`
	TextureEnabled  bool        `yaml:"texture"`
	CurveVisible    bool        `yaml:"curve"`
	CubeColor       scene.Color `yaml:"color"`
	ColorName       string      `yaml:"color_name"`
	BezierT         float32     `yaml:"bezier_t"`
	StatusText      string      `yaml:"status"`
}

// TakeSnapshot copies the observable fields of st.
func TakeSnapshot(st *scene.State) (Snapshot, error) {
	var s Snapshot
	if err := copier.Copy(&s, st); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	return s, nil
}

// YAML encodes s for the console.
func (s Snapshot) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
