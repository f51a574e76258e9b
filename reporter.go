package stylehooks

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config LintConfig) bool {
	if config.UseColors {
		return true
	}

	// FORCE_COLOR is honored by most CI runners
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	sortIssues(issues)

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	// Multi-candidate messages list one hook per line; indent them under
	// the location
	text := strings.ReplaceAll(issue.Text, "\n", "\n    ")

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column, len(issue.Value))
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator underlines width bytes starting at column, copying
// tabs from the source line so the caret stays aligned
func (r *Reporter) buildCaretIndicator(sourceLine string, column, width int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	// Underline stops at the end of the line for multi-line values
	if rest := len(sourceLine) - prefixLen; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}

	return padding.String() + "^" + strings.Repeat("~", width-1)
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result LintResult) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount

	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")

	if errors > 0 && warnings > 0 {
		if truncated > 0 {
			fmt.Fprintf(r.w, "%s (%s, %s; %s truncated):\n",
				pluralizeCount(totalIssues, "issue", "issues"),
				pluralizeCount(errors, "error", "errors"),
				pluralizeCount(warnings, "warning", "warnings"),
				pluralizeCount(truncated, "issue", "issues"))
		} else {
			fmt.Fprintf(r.w, "%s (%s, %s):\n",
				pluralizeCount(totalIssues, "issue", "issues"),
				pluralizeCount(errors, "error", "errors"),
				pluralizeCount(warnings, "warning", "warnings"))
		}
	} else {
		if truncated > 0 {
			fmt.Fprintf(r.w, "%s (%s truncated):\n",
				pluralizeCount(totalIssues, "issue", "issues"),
				pluralizeCount(truncated, "issue", "issues"))
		} else {
			fmt.Fprintf(r.w, "%s:\n", pluralizeCount(totalIssues, "issue", "issues"))
		}
	}

	// Group by linter, in name order for stable output
	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)

	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if result.FixedCount > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen,
			fmt.Sprintf("Fixed %s", pluralizeCount(result.FixedCount, "value", "values")), r.useColors))
	}

	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		if result.Fixable > result.FixedCount {
			fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --fix to apply single-candidate replacements", r.useColors))
		}
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics and Quick Wins", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
