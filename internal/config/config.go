package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultTag           = "arraystruct"
	DefaultSuffix        = "_arraystruct.go"
	DefaultRuntimeImport = "array-as-struct/arraystruct"
	DefaultGenerator     = "arraystruct-gen"
)

// Config holds generator settings.
type Config struct {
	// Tag is the build tag that guards template files. Generated files
	// carry the negated constraint.
	Tag string `yaml:"tag,omitempty"`
	// Suffix replaces ".go" in the template file name to form the output name.
	Suffix string `yaml:"suffix,omitempty"`
	// RuntimeImport is the import path of the arraystruct package.
	RuntimeImport string `yaml:"runtime_import,omitempty"`
	// Comments enables doc comments on generated declarations.
	Comments *bool `yaml:"comments,omitempty"`
	// Generator is the tool name written in the generated file header.
	Generator string `yaml:"generator,omitempty"`
}

// knownKeys lists the YAML keys of Config.
var knownKeys = []string{"tag", "suffix", "runtime_import", "comments", "generator"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file from the given path.
// An empty path yields Default().
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	c := &Config{}

	// An empty document decodes to a zero node.
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		if err := checkKeys(root.Content[0]); err != nil {
			return nil, err
		}

		if err := root.Content[0].Decode(c); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	applyDefaults(c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// checkKeys rejects keys that do not belong to Config.
func checkKeys(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: config must be a mapping", node.Line)
	}

	var errs []error
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if contains(knownKeys, key.Value) {
			continue
		}

		msg := fmt.Sprintf("line %d: unknown key %q", key.Line, key.Value)
		if s := Suggest(key.Value, knownKeys); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}

		errs = append(errs, errors.New(msg))
	}

	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Tag == "" {
		c.Tag = DefaultTag
	}

	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}

	if c.RuntimeImport == "" {
		c.RuntimeImport = DefaultRuntimeImport
	}

	if c.Comments == nil {
		on := true
		c.Comments = &on
	}

	if c.Generator == "" {
		c.Generator = DefaultGenerator
	}
}

// Validate checks the settings for values that would produce broken output.
func (c *Config) Validate() error {
	var errs []error

	if strings.ContainsAny(c.Tag, " \t!&|()") {
		errs = append(errs, fmt.Errorf("tag %q must be a single build tag", c.Tag))
	}

	if !strings.HasSuffix(c.Suffix, ".go") || strings.HasSuffix(c.Suffix, "_test.go") {
		errs = append(errs, fmt.Errorf("suffix %q must end in .go and not _test.go", c.Suffix))
	}

	if strings.ContainsAny(c.Suffix, `/\`) {
		errs = append(errs, fmt.Errorf("suffix %q must not contain a path separator", c.Suffix))
	}

	return errors.Join(errs...)
}

// CommentsEnabled reports whether generated declarations get doc comments.
func (c *Config) CommentsEnabled() bool {
	return c.Comments == nil || *c.Comments
}

// OutputName maps a template file name to its generated file name.
func (c *Config) OutputName(templateName string) string {
	return strings.TrimSuffix(templateName, ".go") + c.Suffix
}

// Marshal serializes the Config to YAML with keys in a stable order.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return out, nil
}

// KnownKeys returns the accepted YAML keys, sorted.
func KnownKeys() []string {
	keys := append([]string(nil), knownKeys...)
	sort.Strings(keys)

	return keys
}
