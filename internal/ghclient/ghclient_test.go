package ghclient

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-github/v67/github"
)

// newTestClient returns a client talking to srv
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c := &Client{gh: github.NewClient(srv.Client())}
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	c.gh.BaseURL = base
	return c
}

func TestGetContents(t *testing.T) {
	const body = "## Security Policy\n\nReport issues privately.\n"

	var gotRef string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/openinf/.github/contents/docs/SECURITY.md", func(w http.ResponseWriter, r *http.Request) {
		gotRef = r.URL.Query().Get("ref")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"type":"file","encoding":"base64","name":"SECURITY.md","path":"docs/SECURITY.md","content":%q}`,
			base64.StdEncoding.EncodeToString([]byte(body)))
	})
	mux.HandleFunc("/repos/openinf/.github/contents/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"type":"file","name":"SECURITY.md","path":"docs/SECURITY.md"}]`)
	})
	mux.HandleFunc("/repos/openinf/.github/contents/VISION.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		got, err := c.GetContents(ctx, "openinf", ".github", "docs/SECURITY.md", "v1")
		if err != nil {
			t.Fatalf("GetContents() error = %v", err)
		}
		if string(got) != body {
			t.Errorf("GetContents() = %q, want %q", got, body)
		}
		if gotRef != "v1" {
			t.Errorf("ref = %q, want v1", gotRef)
		}
	})

	t.Run("default branch", func(t *testing.T) {
		if _, err := c.GetContents(ctx, "openinf", ".github", "docs/SECURITY.md", ""); err != nil {
			t.Fatalf("GetContents() error = %v", err)
		}
		if gotRef != "" {
			t.Errorf("ref = %q, want empty", gotRef)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.GetContents(ctx, "openinf", ".github", "VISION.md", "")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("GetContents() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := c.GetContents(ctx, "openinf", ".github", "docs", "")
		if err == nil {
			t.Fatal("expected error for directory")
		}
		if errors.Is(err, ErrNotFound) {
			t.Errorf("directory should not be reported as not found: %v", err)
		}
	})
}

func TestGetToken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	if got := getToken("github.com"); got != "" {
		t.Errorf("getToken() = %q, want empty", got)
	}

	ghDir := filepath.Join(home, ".config", "gh")
	if err := os.MkdirAll(ghDir, 0755); err != nil {
		t.Fatal(err)
	}
	hosts := "github.com:\n    oauth_token: from-gh\ngithub.company.com:\n    oauth_token: from-ghe\n"
	if err := os.WriteFile(filepath.Join(ghDir, "hosts.yml"), []byte(hosts), 0600); err != nil {
		t.Fatal(err)
	}

	if got := getToken("github.com"); got != "from-gh" {
		t.Errorf("getToken(github.com) = %q, want from-gh", got)
	}
	if got := getToken("github.company.com"); got != "from-ghe" {
		t.Errorf("getToken(github.company.com) = %q, want from-ghe", got)
	}
	if got := getToken("ghe.other.net"); got != "" {
		t.Errorf("getToken(ghe.other.net) = %q, want empty", got)
	}

	t.Setenv("GH_TOKEN", "from-gh-env")
	if got := getToken("github.com"); got != "from-gh-env" {
		t.Errorf("getToken() = %q, want from-gh-env", got)
	}

	t.Setenv("GITHUB_TOKEN", "from-github-env")
	if got := getToken("github.com"); got != "from-github-env" {
		t.Errorf("getToken() = %q, want from-github-env", got)
	}
}

func TestNewForHost(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	c := NewForHost("github.company.com")
	if got := c.gh.BaseURL.String(); got != "https://github.company.com/api/v3/" {
		t.Errorf("BaseURL = %q", got)
	}
	if c.IsAuthenticated() {
		t.Error("client without a token should not be authenticated")
	}

	t.Setenv("GITHUB_TOKEN", "secret")
	c = New()
	if got := c.gh.BaseURL.String(); got != "https://api.github.com/" {
		t.Errorf("BaseURL = %q", got)
	}
	if !c.IsAuthenticated() {
		t.Error("client with a token should be authenticated")
	}
}
