package source

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Source
		wantErr bool
	}{
		{
			name:  "owner only",
			input: "openinf",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     ".github",
				Original: "openinf",
			},
		},
		{
			name:  "owner/repo",
			input: "openinf/.github",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     ".github",
				Original: "openinf/.github",
			},
		},
		{
			name:  "owner/repo with path and ref",
			input: "openinf/.github:docs/@v1.2.0",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     ".github",
				Path:     "docs",
				Ref:      "v1.2.0",
				Original: "openinf/.github:docs/@v1.2.0",
			},
		},
		{
			name:  "owner/repo with ref",
			input: "openinf/openinf.github.io@develop",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     "openinf.github.io",
				Ref:      "develop",
				Original: "openinf/openinf.github.io@develop",
			},
		},
		{
			name:  "github tree URL",
			input: "https://github.com/openinf/.github/tree/main/profile",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     ".github",
				Path:     "profile",
				Ref:      "main",
				Original: "https://github.com/openinf/.github/tree/main/profile",
			},
		},
		{
			name:  "github clone URL",
			input: "https://github.com/openinf/.github.git",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     ".github",
				Original: "https://github.com/openinf/.github.git",
			},
		},
		{
			name:  "raw URL",
			input: "https://raw.githubusercontent.com/openinf/.github/main/docs",
			want: &Source{
				Host:     "github.com",
				Owner:    "openinf",
				Repo:     ".github",
				Path:     "docs",
				Ref:      "main",
				Original: "https://raw.githubusercontent.com/openinf/.github/main/docs",
			},
		},
		{
			name:  "enterprise URL",
			input: "https://GitHub.Company.com/team/.github",
			want: &Source{
				Host:     "github.company.com",
				Owner:    "team",
				Repo:     ".github",
				Original: "https://GitHub.Company.com/team/.github",
			},
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "URL without repo", input: "https://github.com/openinf", wantErr: true},
		{name: "garbage", input: "not a repo!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSource_FilePath(t *testing.T) {
	root := &Source{Owner: "openinf", Repo: ".github"}
	if got := root.FilePath("SECURITY.md"); got != "SECURITY.md" {
		t.Errorf("FilePath() = %q, want SECURITY.md", got)
	}

	nested := &Source{Owner: "openinf", Repo: ".github", Path: "docs"}
	if got := nested.FilePath("SECURITY.md"); got != "docs/SECURITY.md" {
		t.Errorf("FilePath() = %q, want docs/SECURITY.md", got)
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{Source{Host: "github.com", Owner: "openinf", Repo: ".github"}, "openinf/.github"},
		{Source{Host: "github.com", Owner: "openinf", Repo: ".github", Path: "docs", Ref: "v1"}, "openinf/.github:docs@v1"},
		{Source{Host: "ghe.corp.net", Owner: "team", Repo: ".github"}, "ghe.corp.net/team/.github"},
	}

	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSource_IsEnterprise(t *testing.T) {
	if (&Source{Host: "github.com"}).IsEnterprise() {
		t.Error("github.com should not be enterprise")
	}
	if !(&Source{Host: "github.company.com"}).IsEnterprise() {
		t.Error("github.company.com should be enterprise")
	}
}
