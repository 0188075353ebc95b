package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:     "docs",
	Aliases: []string{"list", "ls"},
	Short:   "List the health files and their overrides",
	Long:    `Display the configured health files in publishing order with their destination and frontmatter overrides.`,
	Args:    cobra.NoArgs,
	Run:     runDocs,
}

func runDocs(cmd *cobra.Command, args []string) {
	p := loadProject()
	table := p.table(nil)
	s := p.synthesizer("")

	printHeader("Health Files")

	source := "built-in defaults"
	if p.Config.Path != "" {
		source = p.rel(p.Config.Path)
	}
	fmt.Println(ui.InfoLine("From: " + source))
	fmt.Println()

	for _, entry := range table {
		fmt.Printf("  %s %s → %s\n", ui.DocBadge(), entry.File, ui.RenderCode(p.rel(s.OutputPath(entry.File))))
		if len(entry.Overrides) == 0 {
			fmt.Println(ui.RenderMuted("    no overrides"))
			continue
		}
		printFrontmatter(healthdoc.NewFrontmatter(entry.Overrides...))
	}

	fmt.Println(ui.PageFooter())
}
