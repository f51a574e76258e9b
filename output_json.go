package stylehooks

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains finding statistics
type JSONStats struct {
	DeclarationsScanned int     `json:"declarations_scanned"`
	HardcodedValues     int     `json:"hardcoded_values"`
	WithReplacement     int     `json:"with_replacement"`
	NoReplacement       int     `json:"no_replacement"`
	Fixable             int     `json:"fixable"`
	Fixed               int     `json:"fixed"`
	DeprecatedTokens    int     `json:"deprecated_tokens"`
	FontFallbacks       int     `json:"font_fallbacks"`
	MisusedHooks        int     `json:"misused_hooks"`
	ReplacementCoverage float64 `json:"replacement_coverage"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string           `json:"file"`
	Line        int              `json:"line"`
	Column      int              `json:"column"`
	Offset      int              `json:"offset"`
	Severity    string           `json:"severity"`
	Message     string           `json:"message"`
	Linter      string           `json:"linter"`
	Value       string           `json:"value"`
	Hooks       []string         `json:"hooks,omitempty"`
	Replacement *JSONReplacement `json:"replacement,omitempty"`
	Source      string           `json:"source,omitempty"` // Optional source line
}

// JSONReplacement is an auto-fix: length bytes at offset become text
type JSONReplacement struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// JSONQuickWin represents a high-impact refactoring opportunity
type JSONQuickWin struct {
	Value       string `json:"value"`
	Hook        string `json:"hook"`
	Occurrences int    `json:"occurrences"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Offset:   issue.Pos.Offset,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Value:    issue.Value,
			Hooks:    issue.Hooks,
			Source:   source,
		}
		if issue.Replacement != nil {
			jsonIssues[i].Replacement = &JSONReplacement{
				Text:   issue.Replacement.NewText,
				Length: issue.Replacement.InlineLength,
			}
		}
	}

	quickWins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		quickWins[i] = JSONQuickWin{
			Value:       win.Value,
			Hook:        win.Hook,
			Occurrences: win.Occurrences,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			DeclarationsScanned: result.DeclarationsScanned,
			HardcodedValues:     result.HardcodedValues,
			WithReplacement:     result.WithReplacement,
			NoReplacement:       result.NoReplacement,
			Fixable:             result.Fixable,
			Fixed:               result.FixedCount,
			DeprecatedTokens:    result.DeprecatedTokens,
			FontFallbacks:       result.FontFallbacks,
			MisusedHooks:        result.MisusedHooks,
			ReplacementCoverage: result.ReplacementCoverage(),
		},
		Issues:    jsonIssues,
		QuickWins: quickWins,
		Warnings:  result.Warnings,
	}
}
