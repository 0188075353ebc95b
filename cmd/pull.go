package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openinf/siteify/internal/ghclient"
	"github.com/openinf/siteify/internal/source"
	"github.com/openinf/siteify/internal/ui"
	"github.com/openinf/siteify/internal/upstream"
)

var pullCmd = &cobra.Command{
	Use:     "pull [repo]",
	Aliases: []string{"fetch"},
	Short:   "Copy missing health files from an upstream repository",
	Long: `Download health files that are missing from the project root, usually
from the organization's .github repository. Files that already exist are
kept unless --force is given.

The repository defaults to 'upstream' in the config.

Sources:
  openinf                                  (openinf/.github)
  openinf/.github:docs@v1                  (directory and ref)
  https://github.com/openinf/.github       (full URL)
  https://github.company.com/team/.github  (GitHub Enterprise)

Authentication uses GITHUB_TOKEN, GH_TOKEN or the gh CLI login.

Examples:
  siteify pull openinf
  siteify pull --only SECURITY.md --force`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPull,
}

var (
	pullOnly   []string
	pullForce  bool
	pullDryRun bool
)

func init() {
	pullCmd.Flags().StringSliceVar(&pullOnly, "only", nil, "Only pull these health files (repeatable)")
	pullCmd.Flags().BoolVarP(&pullForce, "force", "f", false, "Overwrite files that already exist")
	pullCmd.Flags().BoolVar(&pullDryRun, "dry-run", false, "Show what would be downloaded without writing")
}

func runPull(cmd *cobra.Command, args []string) {
	p := loadProject()

	ref := p.Config.Upstream
	if len(args) > 0 {
		ref = args[0]
	}
	if ref == "" {
		exitWithError("no upstream repository: pass one or set 'upstream' in the config")
	}

	src, err := source.Parse(ref)
	if err != nil {
		exitWithError(err.Error())
	}

	client := ghclient.NewForHost(src.Host)

	printHeader("Pulling Health Files")
	fmt.Println(ui.InfoLine("From: " + src.String()))
	if verbose && !client.IsAuthenticated() {
		fmt.Println(ui.WarningLine("No GitHub token found, using unauthenticated requests"))
	}
	fmt.Println()

	puller := &upstream.Puller{
		Root:    p.Root,
		Fetcher: client,
		Force:   pullForce,
		DryRun:  pullDryRun,
	}
	results, err := puller.Pull(cmd.Context(), src, p.table(pullOnly).Files())
	var fetched, notFound int
	for _, r := range results {
		switch r.Status {
		case upstream.StatusFetched:
			fetched++
			fmt.Printf("  %s %s\n", ui.Success.Render("✓"), r.File)
			if verbose {
				fmt.Println(ui.KeyValue("bytes", r.Bytes))
			}
		case upstream.StatusExists:
			fmt.Printf("  %s %s\n", ui.Dim.Render("-"), r.File)
			fmt.Println(ui.RenderMuted("    already present"))
		case upstream.StatusNotFound:
			notFound++
			fmt.Printf("  %s %s\n", ui.Warning.Render("!"), r.File)
			fmt.Println(ui.RenderMuted("    not in " + src.String()))
		}
	}
	if err != nil {
		fmt.Println()
		exitWithError(err.Error())
	}

	fmt.Println()
	verb := "Downloaded"
	if pullDryRun {
		verb = "Would download"
	}
	fmt.Println(ui.SuccessLine(fmt.Sprintf("%s %d file(s)", verb, fetched)))
	if notFound > 0 {
		fmt.Println(ui.WarningLine(fmt.Sprintf("%d file(s) not found upstream", notFound)))
	}
	fmt.Println(ui.PageFooter())
}
