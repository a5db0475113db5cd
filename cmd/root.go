package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conflictview/internal/buffer"
	"conflictview/internal/config"
	"conflictview/internal/conflict"
	"conflictview/internal/git"
	"conflictview/internal/paint"
	"conflictview/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "conflictview",
	Short: "Highlight version-control conflict markers in your terminal",
	Long:  "Scans files for Jujutsu/Git-style conflict markers and paints the current, base and incoming regions with colored backgrounds and inline labels",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(filesCmd)
}

func loadPalette() paint.Palette {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
	}
	return cfg.Palette()
}

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive conflict viewer",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) > 0 {
			path = args[0]
		} else {
			repo := git.New(".")

			files, err := repo.ConflictedFiles()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error listing conflicted files: %v\n", err)
				os.Exit(1)
			}

			if len(files) == 0 {
				fmt.Println("No conflicted files found.")
				return
			}

			path, err = ui.PickFile(files)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error selecting file: %v\n", err)
				os.Exit(1)
			}
		}

		if err := ui.ShowFile(path, loadPalette()); err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
			os.Exit(1)
		}
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "List conflict blocks and regions without a UI",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			lines, err := buffer.Snapshot(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				os.Exit(1)
			}

			blocks := conflict.Parse(lines)
			fmt.Printf("%s: %d conflicts\n", path, len(blocks))

			regions := conflict.Project(lines, blocks)
			for _, region := range regions {
				// Line numbers are 1-based for humans.
				fmt.Printf("  %-8s lines %d-%d  label %q at line %d\n",
					region.Kind.Role(), region.Start+1, region.End+1,
					region.Label, region.LabelLine+1)
			}
		}
	},
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List files with merge conflicts in the current repository",
	Run: func(cmd *cobra.Command, args []string) {
		repo := git.New(".")

		if !repo.IsRepo() {
			fmt.Fprintln(os.Stderr, "Not inside a git repository.")
			os.Exit(1)
		}

		files, err := repo.ConflictedFiles()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing conflicted files: %v\n", err)
			os.Exit(1)
		}

		if len(files) == 0 {
			fmt.Println("No conflicted files.")
			return
		}

		for _, file := range files {
			fmt.Println(file)
		}
	},
}
