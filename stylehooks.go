// Package stylehooks finds hardcoded style values in CSS and suggests
// design-system styling hooks (CSS custom properties) to replace them.
//
// # Linting
//
// Lint CSS files and the <style> blocks and style attributes of HTML files:
//
//	config := stylehooks.LintConfig{
//		MetadataPath: "metadata.json",
//		TokensPath:   "deprecated-tokens.yaml",
//		ScanPaths:    []string{"src/**/*.css", "src/**/*.html"},
//		FontFallback: true,
//	}
//	result, err := stylehooks.Lint(config)
//
// Every finding carries the hooks whose value matches the hardcoded one.
// Findings with exactly one candidate are fixable; set LintConfig.Fix to
// rewrite the files in place.
//
// # Metadata generation
//
// Build the metadata file from the stylesheet that defines the hooks:
//
//	result, err := stylehooks.GenerateMetadata(stylehooks.GenerateConfig{
//		SourcePaths: []string{"node_modules/@design/hooks/**/*.css"},
//		OutputPath:  "metadata.json",
//		Prefix:      "--slds-g-",
//	})
//
// # CLI Tool
//
// Install the CLI with:
//
//	go install github.com/yacobolo/stylehooks/cmd/stylehooks@latest
package stylehooks

// Public API:
// - Lint(config LintConfig) (*LintResult, error)
// - ApplyFixes(content string, issues []Issue) (string, []bool)
// - GenerateMetadata(config GenerateConfig) (*GenerateResult, error)
// - NewEngine(config LintConfig) (*engine.Engine, error)
// - DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig)
