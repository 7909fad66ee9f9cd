package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/project"
)

var projectsCmd = &cobra.Command{
	Use:   "projects [path]",
	Short: "Find Flutter and Kotlin projects",
	Long:  "Scan a directory and its immediate children for Flutter (pubspec.yaml) and Kotlin/Gradle (build.gradle, settings.gradle) projects.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		projects, err := project.Scan(root)
		if err != nil {
			return fmt.Errorf("cannot scan %s: %w", root, err)
		}

		if len(projects) == 0 {
			fmt.Println("  No Flutter or Kotlin projects found.")
			return nil
		}

		for _, p := range projects {
			fmt.Printf("  %-24s %-16s %s\n", p.Name, projectKind(p), p.Path)
		}
		return nil
	},
}

func projectKind(p project.Project) string {
	switch {
	case p.Flutter && p.Kotlin:
		return "flutter+kotlin"
	case p.Flutter:
		return "flutter"
	default:
		return "kotlin"
	}
}
