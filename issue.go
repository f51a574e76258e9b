package stylehooks

import "github.com/yacobolo/stylehooks/internal/engine"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "no-hardcoded-values"
	Text        string       `json:"Text"`        // "Consider replacing the #0176d3 static value ..."
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Set when exactly one hook matched
	Hooks       []string     `json:"Hooks"`       // Every candidate hook
	Value       string       `json:"Value"`       // The reported value text
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/card.css"
	Offset   int    `json:"Offset"`   // 0-based byte offset in the file
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the value)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement is an automated fix: InlineLength bytes at Pos.Offset become
// NewText.
type Replacement struct {
	NewText      string // "var(--slds-g-color-accent-1, #0176d3)"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names reported in Issue.FromLinter
const (
	LinterHardcodedValues  = "no-hardcoded-values"
	LinterDeprecatedTokens = "no-deprecated-tokens"
	LinterFontFallback     = "font-fallback"
	LinterHookMisuse       = "no-misused-hooks"
)

// linterFor maps a finding kind to its linter name and severity.
func linterFor(kind engine.Kind) (string, string) {
	switch kind {
	case engine.KindToken:
		return LinterDeprecatedTokens, SeverityError
	case engine.KindFontFamily:
		return LinterFontFallback, SeverityWarning
	case engine.KindMisuse:
		return LinterHookMisuse, SeverityWarning
	default:
		return LinterHardcodedValues, SeverityError
	}
}
