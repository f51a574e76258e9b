package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylehooks"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate styling hook metadata from design-system CSS",
	Long: `Read stylesheets that define styling hooks as custom properties and write
the value-to-hooks metadata file used by lint. Hook groups and applicable
properties are inferred from hook names.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("source", defaultGenerateFiles, "Glob patterns of stylesheets defining hooks")
	f.String("output", "", "Metadata file to write (default: the --metadata path)")
	f.String("prefix", stylehooks.DefaultHookPrefix, "Only custom properties with this prefix are hooks")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	config := buildGenerateConfig(log)

	result, err := stylehooks.GenerateMetadata(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	out := cmd.OutOrStdout()

	if !quiet {
		fmt.Fprintf(out, "Generated %s\n", config.OutputPath)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Hooks found: %d\n", result.HooksFound)
		fmt.Fprintf(out, "  Values mapped: %d\n", result.ValuesMapped)
		if n := len(result.Skipped); n > 0 {
			fmt.Fprintf(out, "  Skipped: %d (not a color, density or shadow)\n", n)
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	// Run lint against the fresh metadata if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		if err := k.Set("metadata", config.OutputPath); err != nil {
			return err
		}
		return runLint()
	}

	return nil
}
