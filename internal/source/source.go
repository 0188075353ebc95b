// Package source parses references to the repository health files are
// pulled from, such as an organization's ".github" repository.
package source

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Source is a parsed upstream repository reference
type Source struct {
	Host     string // GitHub host (github.com or GHE hostname)
	Owner    string
	Repo     string
	Path     string // Directory within the repo holding the health files
	Ref      string // Git ref; empty means the default branch
	Original string
}

var (
	// Matches owner/repo, owner/repo:path, with an optional @ref
	shorthand = regexp.MustCompile(`^([a-zA-Z0-9_-]+)/([a-zA-Z0-9_.-]+)(?::([^@]+))?(?:@(.+))?$`)

	// Matches an owner alone, meaning the owner's .github repository
	ownerOnly = regexp.MustCompile(`^([a-zA-Z0-9_-]+)/?$`)
)

// Parse parses an upstream reference. Accepted forms:
//
//	openinf                      (openinf/.github)
//	openinf/.github
//	openinf/.github:docs@v1
//	https://github.com/openinf/.github/tree/main/docs
//	https://github.company.com/team/.github
func Parse(input string) (*Source, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty source")
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return parseURL(input)
	}

	if matches := shorthand.FindStringSubmatch(input); matches != nil {
		return &Source{
			Host:     "github.com",
			Owner:    matches[1],
			Repo:     matches[2],
			Path:     strings.Trim(matches[3], "/"),
			Ref:      matches[4],
			Original: input,
		}, nil
	}

	if matches := ownerOnly.FindStringSubmatch(input); matches != nil {
		return &Source{
			Host:     "github.com",
			Owner:    matches[1],
			Repo:     ".github",
			Original: input,
		}, nil
	}

	return nil, fmt.Errorf("unable to parse source: %s", input)
}

// parseURL parses github.com or GHE repository URLs
func parseURL(input string) (*Source, error) {
	u, err := url.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		return nil, fmt.Errorf("invalid GitHub URL: %s", input)
	}

	host := strings.ToLower(u.Host)
	if host == "raw.githubusercontent.com" {
		host = "github.com"
	}

	src := &Source{
		Host:     host,
		Owner:    parts[0],
		Repo:     strings.TrimSuffix(parts[1], ".git"),
		Original: input,
	}

	// raw.githubusercontent.com/owner/repo/ref/path
	if u.Host == "raw.githubusercontent.com" {
		if len(parts) >= 3 {
			src.Ref = parts[2]
		}
		if len(parts) > 3 {
			src.Path = strings.Join(parts[3:], "/")
		}
		return src, nil
	}

	// owner/repo/tree/ref/path, owner/repo/blob/ref/path, owner/repo/raw/ref/path
	if len(parts) >= 4 && (parts[2] == "tree" || parts[2] == "blob" || parts[2] == "raw") {
		src.Ref = parts[3]
		if len(parts) > 4 {
			src.Path = strings.Join(parts[4:], "/")
		}
	}

	return src, nil
}

// FilePath returns the repository path of a health file
func (s *Source) FilePath(name string) string {
	if s.Path == "" {
		return name
	}
	return path.Join(s.Path, name)
}

// IsEnterprise returns true if this is a GitHub Enterprise source
func (s *Source) IsEnterprise() bool {
	return s.Host != "" && s.Host != "github.com"
}

// String returns a human-readable representation
func (s *Source) String() string {
	result := fmt.Sprintf("%s/%s", s.Owner, s.Repo)
	if s.IsEnterprise() {
		result = s.Host + "/" + result
	}
	if s.Path != "" {
		result += ":" + s.Path
	}
	if s.Ref != "" {
		result += "@" + s.Ref
	}
	return result
}
