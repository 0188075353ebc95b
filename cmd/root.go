package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openinf/siteify/internal/config"
	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "siteify",
	Short: "Publish community health files to the docs site",
	Long: ui.Logo() + `

  Copies CODE_OF_CONDUCT.md, CONTRIBUTING.md, SECURITY.md, SUPPORT.md and
  VISION.md into the site's docs collection with generated frontmatter,
  and runs the project's lint scripts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootDir    string
	configPath string
	verbose    bool
)

// Execute runs the root command. Ctrl-C cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addProjectFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func addProjectFlags(flags *pflag.FlagSet) {
	flags.StringVar(&rootDir, "root", "", "Project root holding the health files (default: nearest .git or .config/siteify)")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default: <root>/.config/siteify/siteify.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show per-document detail")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("siteify %s\n", Version)
	},
}

// project is the resolved root directory and configuration
type project struct {
	Root   string
	Config *config.Config
}

// loadProject resolves --root and --config, exiting on failure
func loadProject() *project {
	root := rootDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			exitWithError(fmt.Sprintf("failed to get current directory: %v", err))
		}
		root = config.FindProjectRoot(cwd)
		if root == "" {
			root = cwd
		}
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(config.ProjectPath(root))
	}
	if err != nil {
		exitWithError(fmt.Sprintf("failed to load config: %v", err))
	}

	return &project{Root: root, Config: cfg}
}

// table returns the configured documents, restricted to only if given
func (p *project) table(only []string) healthdoc.Table {
	table, err := p.Config.Table()
	if err != nil {
		exitWithError(fmt.Sprintf("invalid config: %v", err))
	}
	return table.Only(only...)
}

// synthesizer returns a Synthesizer writing to outDir, or the configured
// collection when outDir is empty
func (p *project) synthesizer(outDir string) *healthdoc.Synthesizer {
	s := healthdoc.New(p.Root)
	s.OutDir = p.Config.OutputDir()
	if outDir != "" {
		s.OutDir = outDir
	}
	return s
}

// rel shortens path for display
func (p *project) rel(path string) string {
	if r, err := filepath.Rel(p.Root, path); err == nil {
		return r
	}
	return path
}

// printHeader prints a section header with surrounding blank lines
func printHeader(title string) {
	fmt.Println()
	fmt.Println(ui.SectionHeader(title))
	fmt.Println()
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}
