package healthdoc

import (
	"reflect"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	wantFiles := []string{
		"CODE_OF_CONDUCT.md",
		"CONTRIBUTING.md",
		"SECURITY.md",
		"SUPPORT.md",
		"VISION.md",
	}
	if got := table.Files(); !reflect.DeepEqual(got, wantFiles) {
		t.Errorf("Files() = %v, want %v", got, wantFiles)
	}
}

func TestTable_Lookup(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		file      string
		wantTitle any
		wantLen   int
	}{
		{"SECURITY.md", "OpenINF Security Policies", 2},
		{"SUPPORT.md", "Support • Frequently Asked Questions", 3},
		{"CODE_OF_CONDUCT.md", "OpenINF Code of Conduct", 2},
		{"security.md", nil, 0},
		{"README.md", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			o := table.Lookup(tt.file)
			if len(o) != tt.wantLen {
				t.Fatalf("Lookup(%q) len = %d, want %d", tt.file, len(o), tt.wantLen)
			}
			if tt.wantLen > 0 && o[0].Value != tt.wantTitle {
				t.Errorf("Lookup(%q) title = %v, want %v", tt.file, o[0].Value, tt.wantTitle)
			}
		})
	}
}

func TestTable_Only(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{"none keeps all", nil, table.Files()},
		{"table order wins", []string{"VISION.md", "SECURITY.md"}, []string{"SECURITY.md", "VISION.md"}},
		{"unknown appended", []string{"README.md", "SUPPORT.md"}, []string{"SUPPORT.md", "README.md"}},
		{"duplicates collapse", []string{"VISION.md", "VISION.md"}, []string{"VISION.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Only(tt.files...).Files(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Only() = %v, want %v", got, tt.want)
			}
		})
	}

	if o := table.Only("README.md")[0].Overrides; o != nil {
		t.Errorf("unknown file overrides = %v, want none", o)
	}
}
