// Package ghclient provides a GitHub API client using go-github
package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a file does not exist in the repository
var ErrNotFound = errors.New("not found")

// Client wraps the go-github client
type Client struct {
	gh            *github.Client
	authenticated bool
}

// New creates a new GitHub client for github.com.
// Token resolution order: GITHUB_TOKEN, GH_TOKEN, gh CLI config, unauthenticated
func New() *Client {
	return NewForHost("github.com")
}

// NewForHost creates a GitHub client for a specific host (GitHub Enterprise)
func NewForHost(host string) *Client {
	if host == "" || host == "api.github.com" {
		host = "github.com"
	}

	token := getToken(host)

	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	c := &Client{
		gh:            github.NewClient(httpClient),
		authenticated: token != "",
	}

	if host != "github.com" {
		c.gh.BaseURL, _ = url.Parse(fmt.Sprintf("https://%s/api/v3/", host))
		c.gh.UploadURL, _ = url.Parse(fmt.Sprintf("https://%s/api/uploads/", host))
	}

	return c
}

// IsAuthenticated returns true if the client has a token
func (c *Client) IsAuthenticated() bool {
	return c.authenticated
}

// GetContents fetches a file's content from a repository at ref. An empty
// ref reads the default branch.
func (c *Client) GetContents(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	fileContent, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s/%s/%s: %w", owner, repo, path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contents: %w", err)
	}

	if fileContent == nil {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	return []byte(content), nil
}

// getToken attempts to get a GitHub token from various sources
func getToken(host string) string {
	// 1. GITHUB_TOKEN env var
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	// 2. GH_TOKEN env var (gh CLI compat)
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	// 3. Try gh CLI config
	if token := readGhToken(host); token != "" {
		return token
	}

	// 4. Unauthenticated (60 req/hr)
	return ""
}

// ghHostsConfig represents the gh CLI hosts.yml config
type ghHostsConfig map[string]struct {
	OAuthToken string `yaml:"oauth_token"`
}

// readGhToken reads the token for host from gh CLI config
func readGhToken(host string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	hostsPath := filepath.Join(homeDir, ".config", "gh", "hosts.yml")
	data, err := os.ReadFile(hostsPath)
	if err != nil {
		return ""
	}

	var hosts ghHostsConfig
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return ""
	}
	return hosts[host].OAuthToken
}
