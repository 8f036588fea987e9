package config

import (
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the animation file format version this package reads
const CurrentVersion = 1

// AnimationFile is the root of animations/<name>.yaml
type AnimationFile struct {
	Version int                `yaml:"version"`
	Start   string             `yaml:"start"`
	Nodes   map[string]NodeDef `yaml:"nodes"`
}

// NodeDef holds exactly one node variant
type NodeDef struct {
	Play  *PlayDef  `yaml:"play,omitempty"`
	Match *MatchDef `yaml:"match,omitempty"`
	All   *AllDef   `yaml:"all,omitempty"`
}

// PlayDef configures a play node.
// Frames come from either frames or range.
type PlayDef struct {
	FPS    float64    `yaml:"fps"`
	Delay  float64    `yaml:"delay"` // seconds per frame, overrides fps when > 0
	Frames []FrameDef `yaml:"frames"`
	Range  []int      `yaml:"range"` // [first, last], inclusive
	Speed  *float64   `yaml:"speed"` // default 1
	Loop   bool       `yaml:"loop"`
	Reset  *bool      `yaml:"reset"` // default true
}

// FrameDef is one keyframe: a bare atlas index or {sprite, delay}
type FrameDef struct {
	Sprite int      `yaml:"sprite"`
	Delay  *float64 `yaml:"delay,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form
func (f *FrameDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Delay = nil
		if err := value.Decode(&f.Sprite); err != nil {
			return eris.Wrapf(err, "line %d: frame must be an atlas index", value.Line)
		}
		return nil
	}
	type plain FrameDef
	return value.Decode((*plain)(f))
}

// MatchDef configures a match node; keys are player state names
type MatchDef struct {
	States  map[string]string `yaml:"states"`
	Default string            `yaml:"default"`
}

// AllDef configures a composite node
type AllDef struct {
	Children []string `yaml:"children"`
	Loop     bool     `yaml:"loop"`
}
