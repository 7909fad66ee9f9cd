package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/clean"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long:  "Remove Android Studio, Gradle, and Flutter pub caches to reclaim disk space.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")
		return runClean(all, yes)
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	cleanCmd.Flags().Bool("all", false, "Select every cache without prompting")
	cleanCmd.Flags().Bool("yes", false, "Delete without confirmation (implies --all)")
}

// runClean dispatches to the interactive picker on a terminal and to the
// static table everywhere else (pipes, CI, --all/--yes).
func runClean(all, yes bool) error {
	items := clean.ScanDevCaches()

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !all && !yes
	if interactive {
		return runCleanTUI(items)
	}
	return runCleanStatic(items, yes)
}

func runCleanTUI(items []clean.CleanItem) error {
	prog := tea.NewProgram(clean.NewModel(items, dryRun))
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("interactive clean failed: %w", err)
	}

	if m, ok := final.(clean.Model); ok && m.Results() != nil && !dryRun {
		printDiskFree()
	}
	return nil
}

// runCleanStatic measures everything up front, prints the table, and only
// deletes when --yes was given. Without it the output is a preview.
func runCleanStatic(items []clean.CleanItem, yes bool) error {
	fmt.Println("  Developer caches:")
	fmt.Println()

	for i := range items {
		items[i].Measure()
		fmt.Printf("  %-22s %10s  %s\n", items[i].Name, staticSize(items[i]), items[i].Path)
	}
	fmt.Println()

	if !yes && !dryRun {
		fmt.Println("  Nothing deleted. Re-run with --yes to remove these caches,")
		fmt.Println("  or with --dry-run to see how much space each would free.")
		return nil
	}

	var selected []clean.CleanItem
	for _, it := range items {
		if it.Exists {
			selected = append(selected, it)
		}
	}

	results := clean.Execute(selected, dryRun)
	for _, r := range results {
		switch {
		case r.Err == nil && dryRun:
			fmt.Printf("  would free %-10s %s\n", core.FormatSize(r.Freed), r.Path)
		case r.Err == nil:
			fmt.Printf("  freed %-10s %s\n", core.FormatSize(r.Freed), r.Path)
		case r.NotFound():
			fmt.Printf("  not found        %s\n", r.Path)
		default:
			fmt.Printf("  failed           %s: %v\n", r.Path, r.Err)
		}
	}

	fmt.Println()
	verb := "Freed"
	if dryRun {
		verb = "Would free"
	}
	fmt.Printf("  %s %s\n", verb, core.FormatSize(clean.TotalFreed(results)))
	if !dryRun {
		printDiskFree()
	}
	return nil
}

// staticSize mirrors the TUI's three size states for plain output.
func staticSize(it clean.CleanItem) string {
	switch {
	case !it.Exists:
		return "not found"
	case it.Sized:
		return core.FormatSize(it.Size)
	default:
		return "?"
	}
}

// printDiskFree reports free space on the volume holding the home directory.
func printDiskFree() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	usage, err := disk.Usage(home)
	if err != nil {
		return
	}
	fmt.Printf("  Free space: %s of %s\n",
		core.FormatSize(int64(usage.Free)), core.FormatSize(int64(usage.Total)))
}
