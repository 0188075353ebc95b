package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"siteify", "compile"},
	Short:   "Copy health files into the docs collection",
	Long: `Copy each configured health file into the docs collection with
generated frontmatter (title, permalink, note) plus its overrides.

The title comes from the file's first "## " heading, which is removed from
the body, or from the file name when there is none. Existing collection
files are overwritten. The first missing health file stops the build;
documents written before it stay on disk.

Examples:
  siteify build
  siteify build --only SECURITY.md --dry-run
  siteify build --root ../website --out collections/_docs`,
	Args: cobra.NoArgs,
	Run:  runBuild,
}

var (
	buildOut    string
	buildOnly   []string
	buildDryRun bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Collection directory relative to the root (default: collections/_docs)")
	buildCmd.Flags().StringSliceVar(&buildOnly, "only", nil, "Only process these health files (repeatable)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Show what would be written without writing")
}

func runBuild(cmd *cobra.Command, args []string) {
	p := loadProject()
	table := p.table(buildOnly)
	s := p.synthesizer(buildOut)

	printHeader("Siteify")
	fmt.Println(ui.InfoLine(fmt.Sprintf("Root: %s", p.Root)))
	if p.Config.Path != "" {
		fmt.Println(ui.InfoLine(fmt.Sprintf("Config: %s", p.rel(p.Config.Path))))
	}
	fmt.Println()

	if buildDryRun {
		for _, entry := range table {
			plan, err := s.Plan(entry.File, entry.Overrides)
			if err != nil {
				exitWithError(err.Error())
			}
			fmt.Printf("  %s %s → %s\n", ui.Success.Render("✓"), entry.File, p.rel(plan.Path))
			if verbose {
				printFrontmatter(plan.Document.Frontmatter)
			}
		}
		fmt.Println()
		fmt.Println(ui.SuccessLine(fmt.Sprintf("Would write %d document(s)", len(table))))
		fmt.Println(ui.PageFooter())
		return
	}

	if verbose {
		s.Logf = func(format string, args ...any) {
			fmt.Println(ui.RenderMuted("    " + fmt.Sprintf(format, args...)))
		}
	}

	results, err := s.Run(cmd.Context(), table)
	for _, r := range results {
		fmt.Printf("  %s %s → %s\n", ui.Success.Render("✓"), r.Source, p.rel(r.Path))
		if verbose {
			fmt.Println(ui.KeyValue("title", r.Title))
			fmt.Println(ui.KeyValue("bytes", r.Bytes))
		}
	}
	if err != nil {
		fmt.Println()
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.SuccessLine(fmt.Sprintf("Wrote %d document(s)", len(results))))
	fmt.Println(ui.PageFooter())
}

// printFrontmatter lists frontmatter values in emission order
func printFrontmatter(fm *healthdoc.Frontmatter) {
	for _, k := range fm.Keys() {
		v, _ := fm.Get(k)
		fmt.Println(ui.KeyValue(k, v))
	}
}
