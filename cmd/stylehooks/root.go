package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylehooks",
	Short: "Styling hook linter for CSS and HTML",
	Long: `Find hardcoded colors, densities, shadows and deprecated design tokens
in stylesheets and replace them with design-system styling hooks.
Each suggestion wraps the original value: var(--hook, original).`,
	// Default behavior: run lint when no subcommand is given.
	// loadConfig must be called here because PreRunE of lintCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runLint()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().String("metadata", defaultMetadata, "Styling hook metadata file (JSON)")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
