// Package upstream copies health files from an upstream repository, usually
// the organization's ".github" repository, into the project root.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/openinf/siteify/internal/ghclient"
	"github.com/openinf/siteify/internal/source"
)

// Fetcher reads a file from a repository. *ghclient.Client satisfies it.
type Fetcher interface {
	GetContents(ctx context.Context, owner, repo, path, ref string) ([]byte, error)
}

// Status is the outcome of pulling one file.
type Status string

const (
	StatusFetched  Status = "fetched"
	StatusExists   Status = "exists"
	StatusNotFound Status = "not-found"
)

// Result describes one pulled file.
type Result struct {
	File   string
	Path   string
	Status Status
	Bytes  int
}

// Puller writes upstream health files into Root.
type Puller struct {
	Root    string
	Fetcher Fetcher
	// Force overwrites files that already exist locally.
	Force bool
	// DryRun fetches but does not write.
	DryRun bool
}

// Pull fetches each file from src. Files already present in Root are left
// alone unless Force is set; files missing upstream are reported, not
// treated as errors. Any other failure stops the pull.
func (p *Puller) Pull(ctx context.Context, src *source.Source, files []string) ([]Result, error) {
	var results []Result
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		dest := filepath.Join(p.Root, file)
		r := Result{File: file, Path: dest}

		if !p.Force {
			if _, err := os.Stat(dest); err == nil {
				r.Status = StatusExists
				results = append(results, r)
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return results, err
			}
		}

		content, err := p.Fetcher.GetContents(ctx, src.Owner, src.Repo, src.FilePath(file), src.Ref)
		if errors.Is(err, ghclient.ErrNotFound) {
			r.Status = StatusNotFound
			results = append(results, r)
			continue
		}
		if err != nil {
			return results, fmt.Errorf("%s: %w", file, err)
		}

		if !p.DryRun {
			if err := os.WriteFile(dest, content, 0644); err != nil {
				return results, fmt.Errorf("failed to write %s: %w", file, err)
			}
		}

		r.Status = StatusFetched
		r.Bytes = len(content)
		results = append(results, r)
	}
	return results, nil
}
