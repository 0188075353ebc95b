package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/lint"
	"github.com/openinf/siteify/internal/ui"
)

var lintCmd = &cobra.Command{
	Use:     "lint [script...]",
	Aliases: []string{"format"},
	Short:   "Run the project's lint scripts",
	Long: `Run lint scripts from the project root through a built-in POSIX shell.

Scripts come from the 'lint' list in the config, defaulting to
  npx eslint --ext=.js,.cjs,.mjs . --fix

Every script runs, even after one fails. The exit status is the status of
the last failing script, or 0 when all pass. Note this differs from the old
Node build task, which exited with the status of the last script to finish,
so a passing script after a failing one reported success.

Examples:
  siteify lint
  siteify lint 'npx markdownlint-cli2 "**/*.md"'`,
	Run: runLint,
}

func runLint(cmd *cobra.Command, args []string) {
	p := loadProject()

	scripts := args
	if len(scripts) == 0 {
		scripts = p.Config.LintScripts()
	}

	if verbose {
		for _, script := range scripts {
			fmt.Fprintln(os.Stderr, ui.InfoLine("$ "+script))
		}
	}

	runner := &lint.Runner{
		Dir:    p.Root,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	code, err := runner.RunAll(cmd.Context(), scripts)
	if err != nil {
		exitWithError(err.Error())
	}
	if code != 0 {
		os.Exit(code)
	}
}
