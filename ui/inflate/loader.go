// Package inflate turns declarative YAML layouts into sidenav content trees.
package inflate

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sidenav/ui/sidenav"
)

// Built-in layout identifiers.
const (
	NavigationLayout = "nav"
	MainLayout       = "main"
)

//go:embed layouts/*.yaml
var layoutsFS embed.FS

// Spec is one node of a layout file.
type Spec struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Text     string `yaml:"text"`
	Value    string `yaml:"value"`
	Height   int    `yaml:"height"`
	Children []Spec `yaml:"children"`
}

// Loader reads layouts from a directory, falling back to the built-in ones.
type Loader struct {
	dir string
}

var _ sidenav.Inflater = (*Loader)(nil)

// NewLoader creates a loader. An empty dir uses only the built-in layouts.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the directory searched before the built-in layouts.
func (l *Loader) Dir() string {
	return l.dir
}

// ErrEmptyLayout is returned for a layout file with no root node.
var ErrEmptyLayout = errors.New("empty layout")

// Load returns the raw YAML for id.
func (l *Loader) Load(id string) ([]byte, error) {
	_, data, err := l.read(id)
	return data, err
}

// read looks for <id>.yaml then <id>.yml in the loader directory before the
// built-in layouts, and returns the file name it found.
func (l *Loader) read(id string) (string, []byte, error) {
	base := baseName(id)
	if l.dir != "" {
		for _, ext := range layoutExts {
			name := base + ext
			data, err := os.ReadFile(filepath.Join(l.dir, name))
			if err == nil {
				return name, data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return name, nil, fmt.Errorf("inflate: read %s: %w", name, err)
			}
		}
	}
	name := base + layoutExts[0]
	data, err := layoutsFS.ReadFile("layouts/" + name)
	if err != nil {
		return name, nil, fmt.Errorf("inflate: layout %q not found: %w", id, err)
	}
	return name, data, nil
}

// LoadSpec parses the layout for id.
func (l *Loader) LoadSpec(id string) (*Spec, error) {
	name, data, err := l.read(id)
	if err != nil {
		return nil, err
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("inflate: unmarshal %s: %w", name, err)
	}
	if spec.empty() {
		return nil, fmt.Errorf("inflate: %s: %w", name, ErrEmptyLayout)
	}
	return &spec, nil
}

func (s *Spec) empty() bool {
	return s.ID == "" && s.Type == "" && s.Text == "" && s.Value == "" &&
		s.Height == 0 && len(s.Children) == 0
}

// Inflate builds the content tree for id. ResourceNone inflates to nil.
func (l *Loader) Inflate(id string) (*sidenav.Node, error) {
	if id == sidenav.ResourceNone {
		return nil, nil
	}
	spec, err := l.LoadSpec(id)
	if err != nil {
		return nil, err
	}
	node, err := Build(spec)
	if err != nil {
		return nil, fmt.Errorf("inflate: %s: %w", id, err)
	}
	return node, nil
}

// Build converts a parsed spec into nodes.
func Build(spec *Spec) (*sidenav.Node, error) {
	kind, err := sidenav.ParseKind(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", spec.ID, err)
	}
	if kind != sidenav.KindGroup && len(spec.Children) > 0 {
		return nil, fmt.Errorf("node %q: %s cannot have children", spec.ID, kind)
	}
	if spec.Height < 0 {
		return nil, fmt.Errorf("node %q: negative height %d", spec.ID, spec.Height)
	}

	node := sidenav.NewNode(spec.ID, kind, spec.Text)
	node.Value = spec.Value
	node.Height = spec.Height
	for i := range spec.Children {
		child, err := Build(&spec.Children[i])
		if err != nil {
			return nil, err
		}
		node.Add(child)
	}
	return node, nil
}

var layoutExts = []string{".yaml", ".yml"}

// LayoutID returns the layout identifier for a file path, or "" if the file
// is not a layout.
func LayoutID(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	for _, e := range layoutExts {
		if ext == e {
			return strings.TrimSuffix(base, ext)
		}
	}
	return ""
}

func baseName(id string) string {
	return filepath.Base(filepath.ToSlash(id))
}
