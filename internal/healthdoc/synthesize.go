// Package healthdoc copies community health files (CONTRIBUTING.md,
// SECURITY.md, ...) into the website's docs collection, adding the
// frontmatter the site generator needs.
package healthdoc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultOutDir is the docs collection, relative to the project root.
const DefaultOutDir = "collections/_docs"

// Synthesizer reads health files from Root and writes them to OutDir.
type Synthesizer struct {
	// Root is the directory holding the health files. Empty means the
	// working directory.
	Root string
	// OutDir is the collection directory, relative to Root unless absolute.
	OutDir string
	// Logf, if set, receives one line per written document.
	Logf func(format string, args ...any)
}

// WriteResult describes a document written to the collection.
type WriteResult struct {
	Source string
	Path   string
	Slug   string
	Title  string
	Bytes  int
}

// Plan is a rendered document and where it would be written.
type Plan struct {
	Document *Document
	Path     string
	Content  []byte
}

// New returns a Synthesizer for root using the default collection dir.
func New(root string) *Synthesizer {
	return &Synthesizer{Root: root, OutDir: DefaultOutDir}
}

func (s *Synthesizer) outDir() string {
	dir := s.OutDir
	if dir == "" {
		dir = DefaultOutDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(s.Root, dir)
}

// OutputPath returns the collection path for a health file name.
func (s *Synthesizer) OutputPath(name string) string {
	return filepath.Join(s.outDir(), Slug(name)+".md")
}

func (s *Synthesizer) read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingInputError{File: name}
		}
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

// Plan reads and renders a health file without writing anything.
func (s *Synthesizer) Plan(name string, overrides Overrides) (*Plan, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	content, err := s.read(name)
	if err != nil {
		return nil, err
	}

	doc, err := Build(name, content, overrides)
	if err != nil {
		return nil, err
	}

	out, err := doc.Render()
	if err != nil {
		return nil, err
	}

	return &Plan{Document: doc, Path: s.OutputPath(name), Content: out}, nil
}

// Synthesize renders a health file and writes it to the collection,
// replacing whatever file is already there.
func (s *Synthesizer) Synthesize(name string, overrides Overrides) (*WriteResult, error) {
	plan, err := s.Plan(name, overrides)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(plan.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(plan.Path, plan.Content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", plan.Path, err)
	}

	res := &WriteResult{
		Source: name,
		Path:   plan.Path,
		Slug:   plan.Document.Slug,
		Title:  plan.Document.Title(),
		Bytes:  len(plan.Content),
	}
	if s.Logf != nil {
		s.Logf("%s → %s", res.Source, res.Path)
	}
	return res, nil
}

// Run synthesizes every entry of the table in order. The first failure
// stops the run: later documents are not written, earlier ones stay on
// disk. The results written so far are returned alongside the error.
func (s *Synthesizer) Run(ctx context.Context, table Table) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(table))
	for _, entry := range table {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := s.Synthesize(entry.File, entry.Overrides)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}
