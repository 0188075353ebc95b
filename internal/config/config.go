package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/lint"
	"github.com/openinf/siteify/internal/source"
)

// Following the dot-config specification: https://dot-config.github.io/
// Project config: .config/siteify/siteify.yaml (in project root)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "siteify"
	// ConfigFile is the project configuration filename
	ConfigFile = "siteify.yaml"
)

// Config is the project configuration. Every field is optional; missing
// fields fall back to the built-in OpenINF defaults.
type Config struct {
	// OutDir is the docs collection directory, relative to the project root
	OutDir string `yaml:"outDir,omitempty"`
	// Documents lists the health files to publish, in order
	Documents []Document `yaml:"documents,omitempty"`
	// Lint lists the shell scripts run by `siteify lint`
	Lint []string `yaml:"lint,omitempty"`
	// Upstream is the repository `siteify pull` copies health files from,
	// e.g. "openinf/.github"
	Upstream string `yaml:"upstream,omitempty"`

	// Path is where the config was loaded from ("" for defaults)
	Path string `yaml:"-"`
}

// Document is a health file entry. Overrides is kept as a node so the
// key order written by the user is the order emitted in frontmatter.
type Document struct {
	File      string    `yaml:"file"`
	Overrides yaml.Node `yaml:"overrides,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// FindProjectRoot finds the project root by walking up from dir looking
// for .config/siteify or .git. Returns "" if neither is found.
func FindProjectRoot(dir string) string {
	for {
		// Check for .config/siteify (configured project)
		candidate := filepath.Join(dir, ".config", ConfigDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir
		}

		// Also check for .git to stop at repo root
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return ""
}

// ProjectPath returns the config file location for a project root.
func ProjectPath(root string) string {
	return filepath.Join(root, ".config", ConfigDir, ConfigFile)
}

// Load reads a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the values the YAML decoder cannot.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.OutDir, validation.By(relativePath)),
		validation.Field(&c.Documents, validation.By(uniqueFiles)),
		validation.Field(&c.Lint, validation.Each(validation.Required)),
		validation.Field(&c.Upstream, validation.By(upstreamRef)),
	)
}

// Validate requires a file relative to the project root.
func (d Document) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.File, validation.Required, validation.By(relativePath)),
	)
}

func relativePath(value any) error {
	p, _ := value.(string)
	if p == "" {
		return nil
	}
	if filepath.IsAbs(p) {
		return validation.NewError("siteify.config.absolute_path", "must be relative to the project root")
	}
	if clean := filepath.Clean(p); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return validation.NewError("siteify.config.outside_root", "must stay inside the project root")
	}
	return nil
}

func uniqueFiles(value any) error {
	docs, _ := value.([]Document)
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.File == "" {
			continue
		}
		if seen[d.File] {
			return validation.NewError("siteify.config.duplicate_document", "lists "+d.File+" more than once")
		}
		seen[d.File] = true
	}
	return nil
}

func upstreamRef(value any) error {
	ref, _ := value.(string)
	if ref == "" {
		return nil
	}
	if _, err := source.Parse(ref); err != nil {
		return validation.NewError("siteify.config.upstream", err.Error())
	}
	return nil
}

// LoadOrDefault reads a config file, falling back to defaults when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the config with a comment header.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	header := "# siteify project configuration\n" +
		"#\n" +
		"# documents are published in order to <outDir>/<slug>.md;\n" +
		"# overrides replace the derived title, permalink and note.\n" +
		"# upstream (owner/repo[:dir][@ref]) is where `siteify pull` finds missing files.\n\n"
	return os.WriteFile(path, []byte(header+string(data)), 0644)
}

// FromTable builds a config holding the given documents.
func FromTable(table healthdoc.Table) (*Config, error) {
	cfg := &Config{
		OutDir: healthdoc.DefaultOutDir,
		Lint:   append([]string(nil), lint.DefaultScripts...),
	}
	for _, e := range table {
		doc := Document{File: e.File}
		if len(e.Overrides) > 0 {
			node, err := e.Overrides.Node()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.File, err)
			}
			doc.Overrides = *node
		}
		cfg.Documents = append(cfg.Documents, doc)
	}
	return cfg, nil
}

// Table returns the documents to publish. Without configured documents
// this is the built-in table.
func (c *Config) Table() (healthdoc.Table, error) {
	if len(c.Documents) == 0 {
		return healthdoc.DefaultTable(), nil
	}

	table := make(healthdoc.Table, 0, len(c.Documents))
	for _, d := range c.Documents {
		overrides, err := healthdoc.OverridesFromNode(&d.Overrides)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.File, err)
		}
		table = append(table, healthdoc.Entry{File: d.File, Overrides: overrides})
	}
	return table, nil
}

// OutputDir returns the docs collection directory.
func (c *Config) OutputDir() string {
	if c.OutDir == "" {
		return healthdoc.DefaultOutDir
	}
	return c.OutDir
}

// LintScripts returns the lint scripts to run.
func (c *Config) LintScripts() []string {
	if len(c.Lint) == 0 {
		return lint.DefaultScripts
	}
	return c.Lint
}
