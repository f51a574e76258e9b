package stylehooks

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/stylehooks/internal/engine"
	"github.com/yacobolo/stylehooks/internal/hooks"
)

// maxQuickWins caps LintResult.QuickWins.
const maxQuickWins = 10

// Lint scans the configured files and reports every hardcoded value and
// deprecated token, with the styling hooks that can replace them.
//
// Metadata, token and message files must load: a broken hook mapping would
// otherwise turn every finding into "no replacement". Unreadable scanned
// files are reported in LintResult.Warnings and skipped.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	eng, err := NewEngine(config)
	if err != nil {
		return nil, err
	}

	files, stats, err := expandGlobPatternsWithStats(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	scanLog := log.Named("scanner")
	scanLog.Debug("discovered files",
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}

	var warnErr error
	for _, path := range files {
		file, err := ScanFile(path)
		if err != nil {
			scanLog.Warn("skipping file", zap.String("file", path), zap.Error(err))
			warnErr = multierr.Append(warnErr, fmt.Errorf("%s: %w", path, err))
			continue
		}

		issues := analyzeFile(eng, file, result)

		if config.Fix {
			remaining, fixed, err := fixFile(file, issues)
			if err != nil {
				scanLog.Warn("fix failed", zap.String("file", path), zap.Error(err))
				warnErr = multierr.Append(warnErr, fmt.Errorf("%s: %w", path, err))
			} else {
				issues = remaining
				result.FixedCount += fixed
			}
		}

		result.Issues = append(result.Issues, issues...)
	}

	for _, err := range multierr.Errors(warnErr) {
		result.Warnings = append(result.Warnings, err.Error())
	}

	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}
	result.QuickWins = generateQuickWins(result.Issues)

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// NewEngine loads the configured metadata, token table and messages and
// builds the matching engine.
func NewEngine(config LintConfig) (*engine.Engine, error) {
	if config.MetadataPath == "" {
		return nil, fmt.Errorf("no metadata file configured")
	}
	mapping, err := hooks.LoadMapping(config.MetadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	opts := []engine.Option{
		engine.WithLogger(config.Logger),
		engine.WithFontFallbackCheck(config.FontFallback),
	}

	if config.TokensPath != "" {
		tokens, err := hooks.LoadTokenTable(config.TokensPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load deprecated tokens: %w", err)
		}
		opts = append(opts, engine.WithTokens(tokens))
	}

	if config.MessagesPath != "" {
		messages, err := engine.LoadMessages(config.MessagesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load messages: %w", err)
		}
		opts = append(opts, engine.WithMessages(messages))
	}

	return engine.New(mapping, opts...)
}

// analyzeFile runs every declaration of file through the engine and
// converts findings to issues, updating the statistics in result.
func analyzeFile(eng *engine.Engine, file *SourceFile, result *LintResult) []Issue {
	lines := newLineIndex(file.Content)
	var issues []Issue

	for _, decl := range file.Declarations {
		result.DeclarationsScanned++

		res := eng.Analyze(decl.Property, decl.Value)
		for _, f := range res.Findings {
			issue := buildIssue(file.Path, lines, decl, f)
			countFinding(result, f, issue)
			issues = append(issues, issue)
		}
	}

	return issues
}

func buildIssue(path string, lines *lineIndex, decl Declaration, f engine.Finding) Issue {
	start := decl.Offset + f.Span.Start
	line, col := lines.Position(start)
	endLine, _ := lines.Position(decl.Offset + f.Span.End)
	linter, severity := linterFor(f.Kind)

	issue := Issue{
		FromLinter:  linter,
		Text:        f.Message,
		Severity:    severity,
		SourceLines: []string{lines.Line(line)},
		Pos: IssuePos{
			Filename: path,
			Offset:   start,
			Line:     line,
			Column:   col,
		},
		Hooks: f.Hooks,
		Value: f.Value,
	}
	if endLine > line {
		issue.LineRange = &LineRange{From: line, To: endLine}
	}
	if fix, ok := f.Fix(); ok {
		issue.Replacement = &Replacement{
			NewText:      fix,
			InlineLength: f.Span.Len(),
		}
	}
	return issue
}

func countFinding(result *LintResult, f engine.Finding, issue Issue) {
	switch f.Kind {
	case engine.KindToken:
		result.DeprecatedTokens++
	case engine.KindFontFamily:
		result.FontFallbacks++
	case engine.KindMisuse:
		result.MisusedHooks++
	default:
		result.HardcodedValues++
		if len(f.Hooks) > 0 {
			result.WithReplacement++
		} else {
			result.NoReplacement++
		}
	}
	if issue.Replacement != nil {
		result.Fixable++
	}
}

// fixFile rewrites file with the replacements of issues and returns the
// issues that were not fixed.
func fixFile(file *SourceFile, issues []Issue) ([]Issue, int, error) {
	fixed, applied := ApplyFixes(file.Content, issues)

	count := 0
	var remaining []Issue
	for i, issue := range issues {
		if applied[i] {
			count++
			continue
		}
		remaining = append(remaining, issue)
	}
	if count == 0 {
		return issues, 0, nil
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		return issues, 0, err
	}
	if err := os.WriteFile(file.Path, []byte(fixed), info.Mode().Perm()); err != nil {
		return issues, 0, fmt.Errorf("write fixes: %w", err)
	}
	return remaining, count, nil
}

// generateQuickWins finds the most frequent hardcoded values that map to
// exactly one hook
func generateQuickWins(issues []Issue) []QuickWin {
	type key struct{ value, hook string }
	freq := make(map[key]int)

	for _, issue := range issues {
		if issue.Replacement == nil || issue.FromLinter != LinterHardcodedValues {
			continue
		}
		freq[key{strings.ToLower(issue.Value), issue.Hooks[0]}]++
	}

	wins := make([]QuickWin, 0, len(freq))
	for k, n := range freq {
		wins = append(wins, QuickWin{Value: k.value, Hook: k.hook, Occurrences: n})
	}

	// Sort by occurrences (descending), then value for stable output
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		if wins[i].Value != wins[j].Value {
			return wins[i].Value < wins[j].Value
		}
		return wins[i].Hook < wins[j].Hook
	})

	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}
	return wins
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		issues = limitPerLinter(issues, config.MaxIssuesPerLinter)
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// limitPerLinter keeps at most limit issues of each linter
func limitPerLinter(issues []Issue, limit int) []Issue {
	counts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if counts[issue.FromLinter] < limit {
			filtered = append(filtered, issue)
			counts[issue.FromLinter]++
		}
	}

	return filtered
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
