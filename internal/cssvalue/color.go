package cssvalue

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// colorFunctions are the CSS functions whose whole call is a color literal.
var colorFunctions = map[string]bool{
	"rgb":  true,
	"rgba": true,
	"hsl":  true,
	"hsla": true,
	"hwb":  true,
}

// nonHookColors are valid colors that never map to a styling hook.
var nonHookColors = map[string]bool{
	"transparent":  true,
	"currentcolor": true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
}

// IsColorFunction reports whether name (without parenthesis) is a color function.
func IsColorFunction(name string) bool {
	return colorFunctions[strings.ToLower(name)]
}

// IsValidColor reports whether s is a CSS color literal: hex, named color or
// a color function. Bare hex digits without '#' are rejected even though the
// parser would accept them, since "bad" or "add" are not colors in CSS.
func IsValidColor(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || isBareHex(s) {
		return false
	}
	_, err := csscolorparser.Parse(s)
	return err == nil
}

// IsHookCandidate reports whether s is a valid color that may be replaced by
// a hook. transparent and the CSS-wide keywords never are.
func IsHookCandidate(s string) bool {
	if nonHookColors[strings.ToLower(strings.TrimSpace(s))] {
		return false
	}
	return IsValidColor(s)
}

// ConvertToHex normalizes any valid color to lowercase #rrggbb, or
// #rrggbbaa when the color is not opaque.
func ConvertToHex(color string) (string, bool) {
	if !IsValidColor(color) {
		return "", false
	}
	c, err := csscolorparser.Parse(strings.TrimSpace(color))
	if err != nil {
		return "", false
	}
	return strings.ToLower(c.HexString()), true
}

func isBareHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
