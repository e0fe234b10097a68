package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npm-packages-collection/minify-css-map/internal/config"
	"github.com/npm-packages-collection/minify-css-map/internal/processor"
	"github.com/npm-packages-collection/minify-css-map/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "minify-css-map [directory]",
	Short: "Minify CSS files and write positional maps",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := targetDir(args)

		p, err := newProcessor(cmd, dir)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		if !p.Quiet {
			ui.PrintInfo("Minifying stylesheets in %s", dir)
		}

		summary, err := p.Run()
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		for _, f := range summary.Failed {
			ui.PrintWarning("Skipped %s: %v", f.Path, f.Err)
		}

		if !p.Quiet {
			ui.PrintSuccess("Minified %d stylesheet(s)", summary.Processed)
		}

		if len(summary.Failed) > 0 {
			ui.PrintError("%d stylesheet(s) failed", len(summary.Failed))
			os.Exit(1)
		}
	},
}

// targetDir resolves the directory to process from the positional
// arguments, defaulting to the current working directory.
func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// newProcessor builds a Processor for dir from the optional minify.toml
// at its root and the --quiet flag. An explicitly set flag wins over the
// config file.
func newProcessor(cmd *cobra.Command, dir string) (*processor.Processor, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	p := processor.New(dir)
	p.Exclude = cfg.Exclude
	p.Quiet = cfg.Quiet
	if flag := cmd.Flags().Lookup("quiet"); flag != nil && flag.Changed {
		p.Quiet = quiet
	}
	return p, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner() + "\n" + ui.VersionLine(Version) + "\n\n" + ui.Divider() + "\n\n  Minifies every .css file under a directory and writes a .min.css\n  and a .css.map positional map next to each one"
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file output")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("minify-css-map %s\n", Version)
	},
}
