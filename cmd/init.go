package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/config"
	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/ui"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"create", "new"},
	Short:   "Write a project config seeded with the defaults",
	Long: `Create .config/siteify/siteify.yaml in the project root, listing the
built-in health files, their overrides and the lint scripts, ready to edit.

Examples:
  siteify init
  siteify init --force`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) {
	p := loadProject()

	printHeader("Initializing")

	path := configPath
	if path == "" {
		path = config.ProjectPath(p.Root)
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			exitWithError(fmt.Sprintf("%s already exists (use --force to overwrite)", p.rel(path)))
		}
	}

	cfg, err := config.FromTable(healthdoc.DefaultTable())
	if err != nil {
		exitWithError(err.Error())
	}
	if err := config.Save(path, cfg); err != nil {
		exitWithError(fmt.Sprintf("failed to write %s: %v", p.rel(path), err))
	}

	fmt.Println(ui.RenderMuted("  Created " + p.rel(path)))
	fmt.Println()
	fmt.Println(ui.SuccessLine("Project initialized"))
	fmt.Println()
	fmt.Println(ui.RenderMuted("  Next steps:"))
	fmt.Println(ui.RenderMuted("    1. Edit the documents and overrides"))
	fmt.Println(ui.RenderMuted("    2. Run 'siteify doctor' to check the health files"))
	fmt.Println(ui.RenderMuted("    3. Run 'siteify build' to publish them"))
	fmt.Println(ui.PageFooter())
}
