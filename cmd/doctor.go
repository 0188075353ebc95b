package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/inspect"
	"github.com/openinf/siteify/internal/lint"
	"github.com/openinf/siteify/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [file]",
	Short: "Check health files for title and markup problems",
	Long: `Inspect the configured health files the way 'siteify build' reads them.

Reports files that are missing, have no "## " title heading, use an
underlined heading that will not be picked up, or keep the heading in the
body because no blank line follows it. Also checks that the commands the
lint scripts call are installed.

If no file is given, checks every configured health file.

Examples:
  siteify doctor
  siteify doctor SECURITY.md`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	p := loadProject()
	table := p.table(args)

	printHeader("Diagnosing")

	var missing, warned int
	for _, entry := range table {
		content, err := os.ReadFile(filepath.Join(p.Root, entry.File))
		if errors.Is(err, fs.ErrNotExist) {
			missing++
			fmt.Printf("  %s %s\n", ui.Error.Render("✗"), entry.File)
			fmt.Println(ui.RenderMuted("    file not found"))
			continue
		}
		if err != nil {
			exitWithError(fmt.Sprintf("failed to read %s: %v", entry.File, err))
		}

		report := inspect.Source(entry.File, content)
		if report.OK() {
			fmt.Printf("  %s %s\n", ui.Success.Render("✓"), entry.File)
		} else {
			warned++
			fmt.Printf("  %s %s\n", ui.Warning.Render("!"), entry.File)
		}

		if verbose {
			fmt.Println(ui.KeyValue("title", report.Title))
			if report.HasComments {
				fmt.Println(ui.RenderMuted("    comment markup will be stripped"))
			}
		}
		for _, issue := range report.Issues {
			fmt.Println(ui.RenderMuted("    " + issue))
		}
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Lint Tools"))
	fmt.Println()

	reqs, err := lint.Requirements(p.Config.LintScripts())
	if err != nil {
		exitWithError(fmt.Sprintf("invalid lint script: %v", err))
	}
	results := lint.VerifyAll(reqs)
	for _, r := range results {
		if r.Satisfied {
			fmt.Printf("  %s %s\n", ui.Success.Render("✓"), r.Requirement.Command)
			continue
		}
		fmt.Printf("  %s %s\n", ui.Warning.Render("!"), r.Requirement.Command)
		fmt.Println(ui.RenderMuted("    " + r.Message))
	}
	if lint.HasUnsatisfied(results) {
		warned++
	}

	fmt.Println()
	switch {
	case missing > 0:
		fmt.Println(ui.ErrorLine(fmt.Sprintf("%d health file(s) missing", missing)))
	case warned > 0:
		fmt.Println(ui.WarningLine(fmt.Sprintf("%d warning(s)", warned)))
	default:
		fmt.Println(ui.SuccessLine("All checks passed"))
	}
	fmt.Println(ui.PageFooter())

	if missing > 0 {
		os.Exit(1)
	}
}
