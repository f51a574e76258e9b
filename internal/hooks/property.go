package hooks

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	directions = `(?:-(?:top|right|bottom|left|inline|block|inline-start|inline-end|block-start|block-end))?`
	corners    = `(?:-(?:top-left|top-right|bottom-left|bottom-right|start-start|start-end|end-start|end-end))?`
)

type propertyRule struct {
	pattern *regexp.Regexp
	target  string
}

// propertyRules map concrete properties to the key used in hook metadata.
// Order matters: the first matching rule wins.
var propertyRules = []propertyRule{
	{regexp.MustCompile(`^(?:outline|outline-width|border` + directions + `-width)$`), "border-width"},
	{regexp.MustCompile(`^margin` + directions + `$`), "margin"},
	{regexp.MustCompile(`^padding` + directions + `$`), "padding"},
	{regexp.MustCompile(`^border` + corners + `-radius$`), "border-radius"},
	{regexp.MustCompile(`^(?:width|height|min-.+|max-.+)$`), "width"},
	{regexp.MustCompile(`^inset` + directions + `$`), "top"},
	{regexp.MustCompile(`^(?:background|background-color)$`), "background-color"},
	{regexp.MustCompile(`^(?:outline|outline-color|border` + directions + `-color)$`), "border-color"},
}

// ResolvePropertyToMatch returns the canonical property key under which hook
// metadata registers a concrete property, e.g. border-top-color becomes
// border-color. Unknown properties are returned lowercased.
func ResolvePropertyToMatch(property string) string {
	p := strings.ToLower(strings.TrimSpace(property))
	for _, r := range propertyRules {
		if r.pattern.MatchString(p) {
			return r.target
		}
	}
	return p
}

// shorthandExpansions lists the longhands checked when a shorthand property
// is validated against an allow list.
var shorthandExpansions = map[string][]string{
	"background": {"background-color"},
	"border":     {"border-color", "border-width", "border-radius"},
	"font":       {"font-family", "font-size", "font-weight"},
	"animation":  {"animation*"},
	"transition": {"transition*"},
}

// IsPropertyAllowed reports whether property may use a hook whose allowed
// properties are allowed. Shorthands are expanded first; entries ending in
// "*" are prefix wildcards.
func IsPropertyAllowed(property string, allowed []string) bool {
	p := strings.ToLower(strings.TrimSpace(property))
	candidates := []string{p}
	if expanded, ok := shorthandExpansions[p]; ok {
		candidates = append(candidates, expanded...)
	}
	for _, c := range candidates {
		for _, a := range allowed {
			if MatchesPropertyPattern(c, a) || MatchesPropertyPattern(a, c) {
				return true
			}
		}
	}
	return false
}

// MatchesPropertyPattern reports whether property matches pattern, where
// pattern is a property name, a name ending in "*", or "*" alone.
func MatchesPropertyPattern(property, pattern string) bool {
	if property == pattern {
		return true
	}
	if !strings.HasSuffix(pattern, Wildcard) {
		return false
	}
	ok, err := doublestar.Match(pattern, property)
	return err == nil && ok
}
