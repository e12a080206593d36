// Package scenefile loads YAML scene descriptions: the clock, lighting,
// camera, named animation parts and the objects that use them.
package scenefile

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"animscene/internal/clock"
)

// Description is the decoded scene file.
type Description struct {
	Clock      ClockSpec               `yaml:"clock"`
	Lighting   *LightingSpec           `yaml:"lighting,omitempty"`
	ClearColor []float64               `yaml:"clear_color,omitempty"`
	Camera     *CameraSpec             `yaml:"camera,omitempty"`
	Parts      map[string][]RecordSpec `yaml:"parts"`
	Objects    []ObjectSpec            `yaml:"objects"`
}

// ClockSpec configures the animation clock. Without ReversalTarget the clock
// reverses at half the cycle.
type ClockSpec struct {
	CycleLength    int  `yaml:"cycle_length"`
	ReversalTarget *int `yaml:"reversal_target,omitempty"`
}

// LightingSpec overrides the default directional light. Unset fields keep
// their defaults.
type LightingSpec struct {
	Ambient   *Vec3 `yaml:"ambient,omitempty"`
	Diffuse   *Vec3 `yaml:"diffuse,omitempty"`
	Specular  *Vec3 `yaml:"specular,omitempty"`
	Direction *Vec3 `yaml:"direction,omitempty"`
}

// CameraSpec places the camera.
type CameraSpec struct {
	Position *Vec3   `yaml:"position,omitempty"`
	LookAt   *Vec3   `yaml:"look_at,omitempty"`
	FovY     float64 `yaml:"fov_y,omitempty"`
}

// RecordSpec is one transformation record of a part. Either Kind with Value
// or Pose is set. With CenterOfModel the rotation center is the centroid of
// the object's first mesh.
type RecordSpec struct {
	Kind          string    `yaml:"kind,omitempty"`
	Value         []float64 `yaml:"value,omitempty"`
	Center        *Vec3     `yaml:"center,omitempty"`
	CenterOfModel bool      `yaml:"center_of_model,omitempty"`
	Rate          *float64  `yaml:"rate,omitempty"`
	Pose          *PoseSpec `yaml:"pose,omitempty"`
}

// PoseSpec is a position plus XYZ Euler angles in radians, compiled to a
// raw matrix record.
type PoseSpec struct {
	Position Vec3 `yaml:"position"`
	Euler    Vec3 `yaml:"euler"`
}

// ObjectSpec describes one scene object.
type ObjectSpec struct {
	Name     string        `yaml:"name"`
	Model    string        `yaml:"model"`
	Texture  string        `yaml:"texture,omitempty"`
	Color    *Vec3         `yaml:"color,omitempty"`
	Material *MaterialSpec `yaml:"material,omitempty"`
	Place    []PlaceStep   `yaml:"place,omitempty"`
	Parts    []string      `yaml:"parts,omitempty"`
}

// MaterialSpec overrides the model's material.
type MaterialSpec struct {
	Ambient   *Vec3    `yaml:"ambient,omitempty"`
	Diffuse   *Vec3    `yaml:"diffuse,omitempty"`
	Specular  *Vec3    `yaml:"specular,omitempty"`
	Shininess *float64 `yaml:"shininess,omitempty"`
}

// PlaceStep is applied once to the model transform when the object is
// built. Exactly one field is set.
type PlaceStep struct {
	Translate *Vec3 `yaml:"translate,omitempty"`
	Rotate    *Vec3 `yaml:"rotate,omitempty"`
	Scale     *Vec3 `yaml:"scale,omitempty"`
}

// Vec3 is a three-component YAML sequence.
type Vec3 [3]float64

// UnmarshalYAML implements yaml.Unmarshaler for Vec3.
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	var vals []float64
	if err := value.Decode(&vals); err != nil {
		return err
	}
	if len(vals) != 3 {
		return errors.Errorf("line %d: want 3 components, got %d", value.Line, len(vals))
	}
	copy(v[:], vals)
	return nil
}

// Load reads and decodes a scene file.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene file")
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene file %s", path)
	}
	return desc, nil
}

// Parse decodes a scene description and applies defaults.
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	if desc.Clock.CycleLength == 0 {
		desc.Clock.CycleLength = clock.DefaultCycleLength
	}
	return &desc, nil
}

// NewClock builds the clock the description asks for.
func (d *Description) NewClock() (*clock.Clock, error) {
	if d.Clock.ReversalTarget == nil {
		return clock.New(d.Clock.CycleLength)
	}
	return clock.NewWithTarget(d.Clock.CycleLength, *d.Clock.ReversalTarget)
}
