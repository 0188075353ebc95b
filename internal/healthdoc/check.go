package healthdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"sort"

	"github.com/adrg/frontmatter"
)

// DriftStatus classifies a collection file against its health file.
type DriftStatus string

const (
	DriftUpToDate DriftStatus = "up-to-date"
	DriftMissing  DriftStatus = "missing"
	DriftStale    DriftStatus = "stale"
)

// Drift reports whether a published document matches what would be
// generated from its health file now.
type Drift struct {
	Source string
	Path   string
	Status DriftStatus
	// Keys lists frontmatter keys whose values differ, sorted.
	Keys []string
	// BodyChanged is true when the content below the frontmatter differs.
	BodyChanged bool
}

// Check compares every table entry with its published file. Nothing is
// written. A missing health file stops the check, as it would a run.
func (s *Synthesizer) Check(table Table) ([]Drift, error) {
	drifts := make([]Drift, 0, len(table))
	for _, entry := range table {
		plan, err := s.Plan(entry.File, entry.Overrides)
		if err != nil {
			return drifts, err
		}

		d := Drift{Source: entry.File, Path: plan.Path, Status: DriftUpToDate}
		existing, err := os.ReadFile(plan.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			d.Status = DriftMissing
		case err != nil:
			return drifts, fmt.Errorf("failed to read %s: %w", plan.Path, err)
		case !bytes.Equal(existing, plan.Content):
			d.Status = DriftStale
			d.Keys, d.BodyChanged = diffDocuments(existing, plan.Content)
		}
		drifts = append(drifts, d)
	}
	return drifts, nil
}

// diffDocuments parses both documents' frontmatter and reports the keys
// that differ and whether the bodies differ. Unparseable frontmatter is
// reported as a change to every key of the wanted document.
func diffDocuments(have, want []byte) ([]string, bool) {
	var haveFM, wantFM map[string]any
	haveBody, haveErr := frontmatter.Parse(bytes.NewReader(have), &haveFM)
	wantBody, _ := frontmatter.Parse(bytes.NewReader(want), &wantFM)
	if haveErr != nil {
		haveFM, haveBody = nil, have
	}

	seen := make(map[string]bool)
	var keys []string
	for k := range wantFM {
		seen[k] = true
	}
	for k := range haveFM {
		seen[k] = true
	}
	for k := range seen {
		if !reflect.DeepEqual(haveFM[k], wantFM[k]) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys, !bytes.Equal(haveBody, wantBody)
}

// Stale reports whether any drift needs regenerating.
func Stale(drifts []Drift) bool {
	for _, d := range drifts {
		if d.Status != DriftUpToDate {
			return true
		}
	}
	return false
}
