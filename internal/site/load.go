package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSource []byte

// Source is the static, declarative form of the site configuration.
type Source struct {
	Name         string             `yaml:"name"`
	Description  string             `yaml:"description"`
	NavItems     []NavEntry         `yaml:"nav_items"`
	NavMenuItems []NavEntry         `yaml:"nav_menu_items"`
	Links        map[LinkKey]string `yaml:"links"`
	Variants     []Variant          `yaml:"variants"`
}

// New validates src and returns the immutable Config built from it.
// The returned Config shares no memory with src.
func New(src Source) (*Config, error) {
	norm, err := validate(src)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		name:         norm.Name,
		description:  norm.Description,
		navItems:     cloneEntries(norm.NavItems),
		navMenuItems: cloneEntries(norm.NavMenuItems),
		links:        make(map[LinkKey]string, len(norm.Links)),
		variants:     make([]Variant, 0, len(norm.Variants)),
		byID:         make(map[string]int, len(norm.Variants)),
		byRoute:      make(map[string]int, len(norm.Variants)),
	}
	for k, v := range norm.Links {
		cfg.links[k] = v
	}
	for i, v := range norm.Variants {
		cfg.variants = append(cfg.variants, v.clone())
		cfg.byID[v.ID] = i
		cfg.byRoute[v.Route] = i
	}
	return cfg, nil
}

// Parse decodes a YAML Source strictly and validates it. Unknown keys and
// trailing documents are rejected.
func Parse(data []byte) (*Config, error) {
	src, err := DecodeSource(data)
	if err != nil {
		return nil, err
	}
	return New(src)
}

// DecodeSource decodes YAML into a Source without validating it.
func DecodeSource(data []byte) (Source, error) {
	var src Source
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil {
		if errors.Is(err, io.EOF) {
			return Source{}, nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return Source{}, fmt.Errorf("site: %w: %v", ErrUnknownConfigField, err)
		}
		return Source{}, fmt.Errorf("site: parse source: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Source{}, errors.New("site: source contains multiple documents or trailing content")
	}
	return src, nil
}

// LoadFile reads and validates a YAML source file.
func LoadFile(path string) (*Config, error) {
	path = filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("site: unsupported source format %q (only YAML supported)", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: read source: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration compiled into the binary.
func Default() (*Config, error) {
	return Parse(defaultSource)
}
