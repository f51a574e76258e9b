package stylehooks

import "go.uber.org/zap"

// LintConfig holds linting configuration
type LintConfig struct {
	MetadataPath string   // Hook metadata file (JSON or YAML)
	TokensPath   string   // Deprecated design token table, optional
	MessagesPath string   // Message template overrides, optional
	ScanPaths    []string // Patterns to scan (e.g., "src/**/*.css")
	Strict       bool     // Exit with code 1 if any issue is found
	Fix          bool     // Rewrite files with single-candidate replacements
	FontFallback bool     // Report font-family lists without a generic family

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (linter) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)

	Logger *zap.Logger // nil disables logging
}

// LintResult contains linting analysis results
type LintResult struct {
	// Issues in golangci-lint format
	Issues []Issue

	FilesScanned        int
	FilesSkipped        int
	DeclarationsScanned int

	// Statistics over all findings, before issue limiting
	HardcodedValues  int // color, density and box-shadow findings
	WithReplacement  int // hardcoded values with at least one candidate hook
	NoReplacement    int // hardcoded values with no candidate hook
	Fixable          int // findings with exactly one candidate hook
	DeprecatedTokens int
	FontFallbacks    int
	MisusedHooks     int // hooks referenced on a property they are not registered for
	FixedCount       int // replacements written when LintConfig.Fix is set

	ErrorCount     int // Issues with error severity
	TruncatedCount int // Issues removed due to limits

	Warnings  []string // Files that could not be read
	QuickWins []QuickWin
}

// ReplacementCoverage is the share of hardcoded values that have a hook.
func (r LintResult) ReplacementCoverage() float64 {
	if r.HardcodedValues == 0 {
		return 100
	}
	return float64(r.WithReplacement) / float64(r.HardcodedValues) * 100
}

// QuickWin is a hardcoded value that maps to a single hook and recurs often.
type QuickWin struct {
	Value       string // "#0176d3"
	Hook        string // "--slds-g-color-accent-1"
	Occurrences int
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Quick Wins only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + Quick Wins (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// GenerateConfig holds metadata generation configuration
type GenerateConfig struct {
	SourcePaths []string // Glob patterns of stylesheets defining hooks
	OutputPath  string   // Metadata JSON to write; "" writes nothing
	Prefix      string   // Only custom properties with this prefix are hooks
	Logger      *zap.Logger
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned int
	HooksFound   int
	ValuesMapped int
	Skipped      []string // Hooks whose value references another hook or is not a literal
	Warnings     []string
}
