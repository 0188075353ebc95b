package ui

import (
	"strings"
	"testing"
)

func TestPlainOutput(t *testing.T) {
	saved := IsTTY
	IsTTY = false
	t.Cleanup(func() { IsTTY = saved })

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"success", SuccessLine("wrote 5 documents"), "  OK: wrote 5 documents"},
		{"error", ErrorLine("missing"), "  ERROR: missing"},
		{"warning", WarningLine("stale"), "  WARN: stale"},
		{"info", InfoLine("Root: ."), "  Root: ."},
		{"header", SectionHeader("Build"), "=== Build ==="},
		{"badge", DocBadge(), "[DOC]"},
		{"footer", PageFooter(), "\n"},
		{"key value", KeyValue("title", "Vision"), "    title: Vision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !strings.Contains(Logo(), "SITEIFY") {
		t.Errorf("Logo() = %q", Logo())
	}
}
