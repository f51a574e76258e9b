package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylehooks"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Find hardcoded values that have a styling hook replacement",
	Long: `Scan CSS and HTML files for hardcoded colors, densities, box-shadows and
deprecated design tokens, and suggest the styling hooks that replace them.
With --fix, every value with exactly one candidate hook is rewritten in place.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultLintPaths, "File patterns to scan")
	f.String("tokens", "", "Deprecated design token table (YAML)")
	f.String("messages", "", "Message catalog overriding the built-in texts (YAML)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("fix", false, "Rewrite values that have exactly one replacement hook")
	f.Bool("font-fallback", true, "Report font-family lists without a generic family")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

func runLint() error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	lintConfig := buildLintConfig(log)

	lintResult, err := stylehooks.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := stylehooks.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		stylehooks.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	if lintFailed(lintResult, lintConfig.Strict) {
		os.Exit(1)
	}

	return nil
}

// lintFailed applies the exit code policy. Strict mode fails on any issue;
// the default soft gate fails only on errors, so font fallback warnings
// never break a build.
func lintFailed(result *stylehooks.LintResult, strict bool) bool {
	if strict {
		return len(result.Issues) > 0
	}
	return result.ErrorCount > 0
}
