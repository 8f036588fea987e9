package config

import (
	"io/fs"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Loader loads animation definitions from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadAnimations loads animations/<name>.yaml
func (l *Loader) LoadAnimations(name string) (*AnimationFile, error) {
	path := "animations/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read animation tree %s", name)
	}

	file, err := ParseAnimations(data)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse animation tree %s", name)
	}
	return file, nil
}

// ListAnimations returns the names of all animation trees
func (l *Loader) ListAnimations() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "animations/*.yaml")
	if err != nil {
		return nil, eris.Wrap(err, "failed to list animation trees")
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[len("animations/"):len(m)-len(".yaml")])
	}
	return names, nil
}

// ParseAnimations decodes an animation file from YAML
func ParseAnimations(data []byte) (*AnimationFile, error) {
	var file AnimationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrap(err, "failed to decode yaml")
	}
	if file.Version != CurrentVersion {
		return nil, eris.Wrapf(ErrInvalidTree, "unsupported version %d (want %d)", file.Version, CurrentVersion)
	}
	return &file, nil
}
