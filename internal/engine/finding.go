package engine

import (
	"github.com/yacobolo/stylehooks/internal/cssvalue"
)

// Kind classifies a finding.
type Kind string

// Finding kinds.
const (
	KindColor      Kind = "color"
	KindDensity    Kind = "density"
	KindShadow     Kind = "box-shadow"
	KindToken      Kind = "token"
	KindFontFamily Kind = "font-family"
	KindMisuse     Kind = "hook-misuse"
)

// Finding is one hardcoded value or legacy token found in a declaration.
// Span is relative to the analyzed value text. Hooks is empty when no
// replacement is registered.
type Finding struct {
	Kind     Kind
	Property string
	Value    string
	Span     cssvalue.Span
	Hooks    []string
	Message  string
}

// Fix returns the replacement for Span. Only findings with exactly one
// candidate hook are fixable.
func (f Finding) Fix() (string, bool) {
	if len(f.Hooks) != 1 {
		return "", false
	}
	return replacement(f.Hooks[0], f.Value), true
}

// IsAdvisory reports whether the finding never carries a replacement.
func (f Finding) IsAdvisory() bool {
	return f.Kind == KindFontFamily || f.Kind == KindMisuse
}

func replacement(hook, original string) string {
	return "var(" + hook + ", " + original + ")"
}

// Suggestion is a candidate replacement of Span with Replacement.
type Suggestion struct {
	Hook        string
	Span        cssvalue.Span
	Replacement string
}

// Result is the outcome of analyzing one declaration. Findings are in
// left-to-right value order.
type Result struct {
	Property string
	Value    string
	Findings []Finding
}

// Suggestions lists every candidate hook of every finding.
func (r Result) Suggestions() []Suggestion {
	var out []Suggestion
	for _, f := range r.Findings {
		for _, h := range f.Hooks {
			out = append(out, Suggestion{Hook: h, Span: f.Span, Replacement: replacement(h, f.Value)})
		}
	}
	return out
}

// HasSuggestions reports whether any finding has a candidate hook.
func (r Result) HasSuggestions() bool {
	for _, f := range r.Findings {
		if len(f.Hooks) > 0 {
			return true
		}
	}
	return false
}
