package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the docs collection is up to date",
	Long: `Compare every configured health file with its published copy in the
docs collection without writing anything. Exits non-zero when a copy is
missing or stale, so CI can catch a forgotten 'siteify build'.

Examples:
  siteify check
  siteify check --only CONTRIBUTING.md`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

var (
	checkOut  string
	checkOnly []string
)

func init() {
	checkCmd.Flags().StringVarP(&checkOut, "out", "o", "", "Collection directory relative to the root (default: collections/_docs)")
	checkCmd.Flags().StringSliceVar(&checkOnly, "only", nil, "Only check these health files (repeatable)")
}

func runCheck(cmd *cobra.Command, args []string) {
	p := loadProject()
	s := p.synthesizer(checkOut)

	printHeader("Checking Collection")

	drifts, err := s.Check(p.table(checkOnly))
	if err != nil {
		exitWithError(err.Error())
	}

	var stale int
	for _, d := range drifts {
		switch d.Status {
		case healthdoc.DriftUpToDate:
			fmt.Printf("  %s %s\n", ui.StatusOK(), p.rel(d.Path))
		case healthdoc.DriftMissing:
			stale++
			fmt.Printf("  %s %s\n", ui.StatusError(), p.rel(d.Path))
			fmt.Println(ui.RenderMuted("    not generated from " + d.Source))
		case healthdoc.DriftStale:
			stale++
			fmt.Printf("  %s %s\n", ui.StatusWarn(), p.rel(d.Path))
			if len(d.Keys) > 0 {
				fmt.Println(ui.RenderMuted("    frontmatter differs: " + strings.Join(d.Keys, ", ")))
			}
			if d.BodyChanged {
				fmt.Println(ui.RenderMuted("    body differs from " + d.Source))
			}
		}
	}

	fmt.Println()
	if healthdoc.Stale(drifts) {
		fmt.Println(ui.ErrorLine(fmt.Sprintf("%d document(s) out of date - run 'siteify build'", stale)))
		fmt.Println(ui.PageFooter())
		os.Exit(1)
	}

	fmt.Println(ui.SuccessLine(fmt.Sprintf("%d document(s) up to date", len(drifts))))
	fmt.Println(ui.PageFooter())
}
