package stylehooks

import (
	"strings"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
	"github.com/yacobolo/stylehooks/internal/match"
)

// hookKind is the kind of literal a hook defines.
type hookKind int

const (
	hookColor hookKind = iota
	hookDensity
	hookShadow
)

// hookCategory infers metadata for hooks whose name contains fragment.
type hookCategory struct {
	fragment   string
	group      string
	properties []string
}

var allColorProperties = []string{"color", "background-color", "border-color", "fill", "stroke"}

// colorCategories are tried in order; the first fragment found in the hook
// name wins, so more specific fragments come first.
var colorCategories = []hookCategory{
	{"on-surface", match.GroupSurface, []string{"color", "fill"}},
	{"surface-inverse", match.GroupSurfaceInverse, []string{"background-color"}},
	{"surface", match.GroupSurface, []string{"background-color"}},
	{"border-inverse", match.GroupBordersInverse, []string{"border-color", "stroke"}},
	{"border", match.GroupBorders, []string{"border-color", "stroke"}},
	{"accent", match.GroupTheme, allColorProperties},
	{"brand", match.GroupTheme, allColorProperties},
	{"error", match.GroupFeedback, allColorProperties},
	{"warning", match.GroupFeedback, allColorProperties},
	{"success", match.GroupFeedback, allColorProperties},
	{"info", match.GroupFeedback, allColorProperties},
	{"disabled", match.GroupFeedback, allColorProperties},
	{"palette", match.GroupReference, []string{"*"}},
}

// densityCategories use the resolved property keys the density matcher
// looks up.
var densityCategories = []hookCategory{
	{"letter-spacing", "", []string{"letter-spacing"}},
	{"spacing", "", []string{"margin", "padding", "gap", "row-gap", "column-gap", "top", "right", "bottom", "left"}},
	{"sizing-border", "", []string{"border-width"}},
	{"border-width", "", []string{"border-width"}},
	{"radius", "", []string{"border-radius"}},
	{"sizing", "", []string{"width"}},
	{"font-scale", "", []string{"font-size"}},
	{"font-size", "", []string{"font-size"}},
	{"font-weight", "", []string{"font-weight"}},
	{"line-height", "", []string{"line-height"}},
}

// classifyHookValue returns the metadata key for a hook's value and the
// kind of literal it is. Colors are keyed by lowercase hex so every color
// syntax maps to one entry.
func classifyHookValue(name, value string) (string, hookKind, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.Contains(strings.ToLower(value), "var(") {
		return "", 0, false
	}

	if strings.Contains(name, "shadow") {
		if len(match.ParseBoxShadowValue(value)) == 0 {
			return "", 0, false
		}
		return value, hookShadow, true
	}

	if cssvalue.IsHookCandidate(value) {
		if hex, ok := cssvalue.ConvertToHex(value); ok {
			return hex, hookColor, true
		}
	}

	if _, ok := cssvalue.ParseDensityValue(value); ok {
		return value, hookDensity, true
	}

	return "", 0, false
}

// categorizeHook infers the group and applicable properties of a hook from
// its name. Color hooks with no known fragment fall back to the reference
// group for any property; density hooks with no known fragment are not
// categorized.
func categorizeHook(name string, kind hookKind) (string, []string, bool) {
	lower := strings.ToLower(name)

	switch kind {
	case hookShadow:
		return "", []string{match.ShadowProperty}, true
	case hookColor:
		if c, ok := findCategory(colorCategories, lower); ok {
			return c.group, c.properties, true
		}
		return match.GroupReference, []string{"*"}, true
	case hookDensity:
		if c, ok := findCategory(densityCategories, lower); ok {
			return c.group, c.properties, true
		}
	}
	return "", nil, false
}

func findCategory(categories []hookCategory, name string) (hookCategory, bool) {
	for _, c := range categories {
		if strings.Contains(name, c.fragment) {
			return c, true
		}
	}
	return hookCategory{}, false
}
