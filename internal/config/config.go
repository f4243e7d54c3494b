// Package config reads deck and report definitions from HCL or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFiller names the group that pads a deck up to deck_size.
	DefaultFiller = "Other"

	KindProbability    = "probability"
	KindExpectedUnique = "expected_unique"
)

// File is a complete configuration: the decks to compare and the
// categories to compare them on.
type File struct {
	Decks      []DeckConfig     `hcl:"deck,block" yaml:"decks"`
	Categories []CategoryConfig `hcl:"category,block" yaml:"categories"`
}

// DeckConfig defines one deck. When DeckSize is set, a Filler group makes up
// the difference between the listed groups and the deck size.
type DeckConfig struct {
	Name     string        `hcl:"name,label" yaml:"name"`
	HandSize int           `hcl:"hand_size" yaml:"hand_size"`
	DeckSize int           `hcl:"deck_size,optional" yaml:"deck_size,omitempty"`
	Filler   string        `hcl:"filler,optional" yaml:"filler,omitempty"`
	Groups   []GroupConfig `hcl:"group,block" yaml:"groups"`
}

// GroupConfig defines one card group. Missing bounds allow anything from
// zero to the group size.
type GroupConfig struct {
	Name string `hcl:"name,label" yaml:"name"`
	Size int    `hcl:"size" yaml:"size"`
	Min  *int   `hcl:"min,optional" yaml:"min,omitempty"`
	Max  *int   `hcl:"max,optional" yaml:"max,omitempty"`
}

// CategoryConfig defines one row of a comparison report.
type CategoryConfig struct {
	Name      string   `hcl:"name,label" yaml:"name"`
	Kind      string   `hcl:"kind,optional" yaml:"kind,omitempty"`
	AnyOf     []string `hcl:"any_of,optional" yaml:"any_of,omitempty"`
	AllOf     []string `hcl:"all_of,optional" yaml:"all_of,omitempty"`
	NoneOf    []string `hcl:"none_of,optional" yaml:"none_of,omitempty"`
	MinUnique int      `hcl:"min_unique,optional" yaml:"min_unique,omitempty"`
	UniqueOf  []string `hcl:"unique_of,optional" yaml:"unique_of,omitempty"`
}

// Load reads a configuration file, choosing the format by extension.
func Load(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		return ParseHCL(src, filename)
	case ".yaml", ".yml":
		return ParseYAML(src)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
}

// ParseHCL decodes and validates an HCL configuration.
func ParseHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return finish(&cfg)
}

// ParseYAML decodes and validates a YAML configuration.
func ParseYAML(src []byte) (*File, error) {
	var cfg File
	if err := yaml.Unmarshal(src, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *File) (*File, error) {
	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *File) applyDefaults() {
	for i := range f.Decks {
		if f.Decks[i].Filler == "" {
			f.Decks[i].Filler = DefaultFiller
		}
	}
	for i := range f.Categories {
		if f.Categories[i].Kind == "" {
			f.Categories[i].Kind = KindProbability
		}
	}
}

// Deck returns the deck with the given name.
func (f *File) Deck(name string) (DeckConfig, bool) {
	for _, d := range f.Decks {
		if d.Name == name {
			return d, true
		}
	}
	return DeckConfig{}, false
}
