package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/project"
	"github.com/lakshaymaurya-felt/devmole/internal/resolver"
)

var purgeCmd = &cobra.Command{
	Use:   "purge [path]",
	Short: "Clean project build artifacts",
	Long:  "Run `flutter clean` in Flutter projects and delete build directories from Kotlin projects under the given path.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPurge,
}

func init() {
	purgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without deleting")
	purgeCmd.Flags().Bool("flutter", false, "Clean Flutter projects only")
	purgeCmd.Flags().Bool("kotlin", false, "Clean Kotlin projects only")
	purgeCmd.Flags().Duration("timeout", 0, "Per-project limit for external tools (0 = no limit)")
}

func runPurge(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	flutterOnly, _ := cmd.Flags().GetBool("flutter")
	kotlinOnly, _ := cmd.Flags().GetBool("kotlin")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	doFlutter := !kotlinOnly
	doKotlin := !flutterOnly

	projects, err := project.Scan(root)
	if err != nil {
		return fmt.Errorf("cannot scan %s: %w", root, err)
	}
	if len(projects) == 0 {
		fmt.Println("  No Flutter or Kotlin projects found.")
		return nil
	}

	// Resolve flutter once through the login shell; a missing tool skips
	// the Flutter half instead of failing the command.
	flutterExe := ""
	if doFlutter && hasFlutterProject(projects) && !dryRun {
		exe, ok := resolver.ResolveTool(context.Background(), "flutter")
		if !ok {
			fmt.Println("  flutter not found in your shell PATH — skipping Flutter projects.")
		}
		flutterExe = exe
	}

	var totalFreed int64
	for _, p := range projects {
		fmt.Printf("  %s\n", p.Name)

		if doFlutter && p.Flutter {
			purgeFlutter(p, flutterExe, timeout)
		}
		if doKotlin && p.Kotlin {
			totalFreed += purgeKotlin(p)
		}
	}

	fmt.Println()
	if dryRun {
		fmt.Printf("  Would free %s of build artifacts\n", core.FormatSize(totalFreed))
	} else {
		fmt.Printf("  Freed %s of build artifacts\n", core.FormatSize(totalFreed))
	}
	return nil
}

func hasFlutterProject(projects []project.Project) bool {
	for _, p := range projects {
		if p.Flutter {
			return true
		}
	}
	return false
}

func purgeFlutter(p project.Project, exe string, timeout time.Duration) {
	if dryRun {
		fmt.Println("    would run: flutter clean")
		return
	}
	if exe == "" {
		return
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := project.FlutterClean(ctx, exe, p.Path)
	switch {
	case errors.Is(err, project.ErrSpawn):
		fmt.Printf("    could not launch flutter: %v\n", err)
	case err != nil:
		fmt.Printf("    flutter clean: %v\n", err)
	default:
		printIndented(out)
	}
}

func purgeKotlin(p project.Project) int64 {
	results := project.PurgeBuildDirs(p.Path, dryRun)
	if len(results) == 0 {
		fmt.Println("    no build directories")
		return 0
	}

	var freed int64
	for _, r := range results {
		switch {
		case r.Err == nil:
			fmt.Printf("    removed %s (%s)\n", r.Path, core.FormatSize(r.Freed))
			freed += r.Freed
		default:
			fmt.Printf("    failed  %s: %v\n", r.Path, r.Err)
		}
	}
	return freed
}

func printIndented(out string) {
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}
}
