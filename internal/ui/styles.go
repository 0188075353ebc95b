package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Ink      = lipgloss.Color("#2E86C1") // Primary blue
	Sky      = lipgloss.Color("#5DADE2") // Info
	Teal     = lipgloss.Color("#48C9B0") // Accent
	Green    = lipgloss.Color("#58D68D") // Success
	Amber    = lipgloss.Color("#F5B041") // Warning
	Coral    = lipgloss.Color("#EC7063") // Error
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ink)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Coral).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Sky)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Code/path style
	Code = lipgloss.NewStyle().
		Foreground(Teal)
)

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// DocBadge marks a health file entry
func DocBadge() string {
	if !IsTTY {
		return "[DOC]"
	}
	return baseBadge.Background(Ink).Foreground(White).Render("DOC")
}

// StatusOK returns the success status badge
func StatusOK() string {
	if !IsTTY {
		return "[OK]"
	}
	return baseBadge.Background(Green).Foreground(White).Render("✓")
}

// StatusWarn returns the warning status badge
func StatusWarn() string {
	if !IsTTY {
		return "[!]"
	}
	return baseBadge.Background(Amber).Foreground(White).Render("!")
}

// StatusError returns the error status badge
func StatusError() string {
	if !IsTTY {
		return "[ERR]"
	}
	return baseBadge.Background(Coral).Foreground(White).Render("✗")
}

// Logo returns the banner shown in the root help
func Logo() string {
	if !IsTTY {
		return "\n  SITEIFY - health files for the docs site\n"
	}
	name := lipgloss.NewStyle().Foreground(Ink).Bold(true).Render("siteify")
	tag := lipgloss.NewStyle().Foreground(Gray).Render("health files for the docs site")
	return fmt.Sprintf("\n  %s  %s\n", name, tag)
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := min(TerminalWidth(), 80)

	titleStyled := lipgloss.NewStyle().
		Foreground(Ink).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := max((width-titleLen-6)/2, 0)
	padRight := max(width-titleLen-6-padLeft, 0)

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Coral)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Amber)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Sky)
}

// KeyValue renders an indented "key: value" pair
func KeyValue(key string, value any) string {
	return fmt.Sprintf("    %s %s", RenderMuted(key+":"), fmt.Sprint(value))
}

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderCode renders a path or command (TTY-aware)
func RenderCode(text string) string {
	return Render(Code, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// PageFooter creates a consistent page footer matching the header width
func PageFooter() string {
	if !IsTTY {
		return "\n"
	}

	width := min(TerminalWidth(), 80)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", width))
	return "\n" + line + "\n"
}
