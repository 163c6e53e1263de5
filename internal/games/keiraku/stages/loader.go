// Package stages loads custom stage templates from YAML files.
// This package depends on sim but sim does not depend on stages.
package stages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

// ErrNoStages is returned when a directory holds no valid stage file.
var ErrNoStages = errors.New("no stage templates found")

// File is the YAML layout of one stage file.
//
//	id: lotus
//	name: Lotus
//	difficulty: 3
//	order: 11
//	shape:
//	  - "################################"
//	  - "#XXXXXXXXXXXXXXXXXXXXXXXXXXXXXX#"
type File struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Difficulty int      `yaml:"difficulty"`
	Order      int      `yaml:"order,omitempty"`
	Shape      []string `yaml:"shape"`
}

// Stage is a parsed stage file.
type Stage struct {
	Template sim.Template
	Order    int
	FilePath string
}

// Parse decodes and validates one stage file.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := Validate(f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the id, difficulty and shape of a stage file.
func Validate(f File) error {
	if strings.TrimSpace(f.ID) == "" {
		return errors.New("stage id is required")
	}
	if f.Difficulty < 1 || f.Difficulty > 5 {
		return fmt.Errorf("stage %s: difficulty %d out of range 1-5", f.ID, f.Difficulty)
	}
	if len(f.Shape) == 0 || len(f.Shape) > sim.GridSize {
		return fmt.Errorf("stage %s: shape has %d rows, want 1-%d", f.ID, len(f.Shape), sim.GridSize)
	}
	for y, row := range f.Shape {
		if len(row) > sim.GridSize {
			return fmt.Errorf("stage %s: row %d has %d cells, max %d", f.ID, y, len(row), sim.GridSize)
		}
		if i := strings.IndexFunc(row, func(r rune) bool { return r != '#' && r != 'X' && r != '.' }); i >= 0 {
			return fmt.Errorf("stage %s: row %d: invalid cell %q", f.ID, y, row[i])
		}
	}
	return nil
}

// Loader handles loading stages from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new stage loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all stage files. Invalid files are
// skipped. Stages are sorted by order, then ID.
func (l *Loader) LoadAll() ([]Stage, error) {
	var out []Stage

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		s, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Template.ID < out[j].Template.ID
	})
	return out, nil
}

// LoadFile loads a single stage file.
func (l *Loader) LoadFile(path string) (Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stage{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return Stage{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	name := f.Name
	if name == "" {
		name = f.ID
	}
	return Stage{
		Template: sim.Template{ID: f.ID, Name: name, Difficulty: f.Difficulty, Shape: f.Shape},
		Order:    f.Order,
		FilePath: path,
	}, nil
}

// Catalog loads every stage under the root as a catalog. A later file
// with an ID already seen is ignored.
func (l *Loader) Catalog() (sim.Catalog, error) {
	list, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(list))
	var c sim.Catalog
	for _, s := range list {
		if seen[s.Template.ID] {
			continue
		}
		seen[s.Template.ID] = true
		c = append(c, s.Template)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("%s: %w", l.Root, ErrNoStages)
	}
	return c, nil
}
