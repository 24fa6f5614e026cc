// Package production provides file-backed integrations around the engine
// core: named genome presets persisted as JSON or YAML, one file per
// preset. Loads validate before returning so a hand-edited preset with a
// bad spacing or a non-finite angle surfaces a typed error instead of
// silently producing a degenerate run.

package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tissuex/internal/primitives"
)

// JSONGenomeStore keeps genome presets as JSON files in a directory.
type JSONGenomeStore struct {
	dir string
}

// NewJSONGenomeStore creates a JSONGenomeStore, ensuring the directory exists.
func NewJSONGenomeStore(dir string) (*JSONGenomeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONGenomeStore{dir: dir}, nil
}

func (s *JSONGenomeStore) Save(name string, g primitives.Genome) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(s.dir, name+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (s *JSONGenomeStore) Load(name string) (primitives.Genome, error) {
	fn := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.Genome{}, fmt.Errorf("genome %q: %w", name, os.ErrNotExist)
		}
		return primitives.Genome{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var g primitives.Genome
	if err := json.Unmarshal(data, &g); err != nil {
		return primitives.Genome{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := g.Validate(); err != nil {
		return primitives.Genome{}, fmt.Errorf("genome %q: %w", name, err)
	}

	return g, nil
}

// YAMLGenomeStore keeps genome presets as YAML files in a directory.
type YAMLGenomeStore struct {
	dir string
}

// NewYAMLGenomeStore creates a YAMLGenomeStore, ensuring the directory exists.
func NewYAMLGenomeStore(dir string) (*YAMLGenomeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLGenomeStore{dir: dir}, nil
}

func (s *YAMLGenomeStore) Save(name string, g primitives.Genome) error {
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(s.dir, name+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (s *YAMLGenomeStore) Load(name string) (primitives.Genome, error) {
	fn := filepath.Join(s.dir, name+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.Genome{}, fmt.Errorf("genome %q: %w", name, os.ErrNotExist)
		}
		return primitives.Genome{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var g primitives.Genome
	if err := yaml.Unmarshal(data, &g); err != nil {
		return primitives.Genome{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := g.Validate(); err != nil {
		return primitives.Genome{}, fmt.Errorf("genome %q: %w", name, err)
	}

	return g, nil
}

// LoadGenomeFile reads a single genome file, dispatching on extension
// (.json, .yaml, .yml). Used by the CLI for ad-hoc genome files outside a
// preset directory.
func LoadGenomeFile(path string) (primitives.Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return primitives.Genome{}, fmt.Errorf("read %s: %w", path, err)
	}

	var g primitives.Genome
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &g); err != nil {
			return primitives.Genome{}, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &g); err != nil {
			return primitives.Genome{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return primitives.Genome{}, fmt.Errorf("genome file %s: unsupported extension", path)
	}
	if err := g.Validate(); err != nil {
		return primitives.Genome{}, fmt.Errorf("genome file %s: %w", path, err)
	}

	return g, nil
}
