package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/logging"
)

var (
	// Global flags
	debug  bool
	dryRun bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "dm",
	Short: "Clean developer caches on your Mac",
	Long: `DevMole - Clean developer tool caches on macOS.

Removes Android Studio, Gradle, and Flutter pub caches, finds Flutter
and Kotlin projects, and scrubs their build artifacts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// When invoked without subcommand, go straight to the cache picker.
		return runClean(false, false)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
