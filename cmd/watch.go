package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/npm-packages-collection/minify-css-map/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch for stylesheet changes and re-minify",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintHeader(Version)

		dir := targetDir(args)

		p, err := newProcessor(cmd, dir)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		if _, err := p.Run(); err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		ui.PrintInfo("Watching %s for changes...", dir)
		ui.PrintInfo("Press Ctrl+C to stop")
		fmt.Println()

		lastMod := time.Now()
		debounce := 500 * time.Millisecond

		for {
			time.Sleep(500 * time.Millisecond)

			changed, newMod := hasChanges(dir, lastMod)
			if !changed {
				continue
			}

			if time.Since(newMod) < debounce {
				continue
			}

			lastMod = time.Now()

			fmt.Println()
			ui.PrintInfo("Changes detected, re-minifying...")

			summary, err := p.Run()
			if err != nil {
				ui.PrintError("%v", err)
				continue
			}
			for _, f := range summary.Failed {
				ui.PrintWarning("Skipped %s: %v", f.Path, f.Err)
			}

			fmt.Println()
			ui.PrintInfo("Watching for changes...")
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// hasChanges reports whether any eligible stylesheet under dir was
// modified after since, and the latest modification time seen.
func hasChanges(dir string, since time.Time) (bool, time.Time) {
	var latestMod time.Time
	changed := false

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !strings.HasSuffix(name, ".css") || strings.HasSuffix(name, ".min.css") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(since) {
			changed = true
		}
		if info.ModTime().After(latestMod) {
			latestMod = info.ModTime()
		}
		return nil
	})

	return changed, latestMod
}
