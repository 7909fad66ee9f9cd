package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/clean"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/resolver"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check tool and cache health",
	Long:  "Show the resolved flutter executable, known cache locations with sizes, and volume usage.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("  DevMole doctor")
		fmt.Println()

		if exe, ok := resolver.ResolveTool(context.Background(), "flutter"); ok {
			fmt.Printf("  flutter: %s\n", exe)
		} else {
			fmt.Println("  flutter: not found in your shell PATH")
		}
		fmt.Println()

		items := clean.ScanDevCaches()
		for i := range items {
			items[i].Measure()
			it := items[i]
			switch {
			case !it.Exists:
				fmt.Printf("  %-22s not found   %s\n", it.Name, it.Path)
			case !it.Sized:
				fmt.Printf("  %-22s unreadable  %s (%s)\n", it.Name, it.Path, it.SizeErr)
			default:
				fmt.Printf("  %-22s %-10s  %s\n", it.Name, core.FormatSize(it.Size), it.Path)
			}
		}
		fmt.Println()

		if home, err := os.UserHomeDir(); err == nil {
			if usage, err := disk.Usage(home); err == nil {
				fmt.Printf("  Volume: %s free of %s (%.1f%% used)\n",
					core.FormatSize(int64(usage.Free)),
					core.FormatSize(int64(usage.Total)),
					usage.UsedPercent)
			}
		}
		return nil
	},
}
