package engine

import (
	"strings"

	"github.com/yacobolo/stylehooks/internal/hooks"
)

var colorProperties = map[string]bool{
	"color":                 true,
	"fill":                  true,
	"stroke":                true,
	"caret-color":           true,
	"accent-color":          true,
	"column-rule-color":     true,
	"text-decoration-color": true,
	"text-emphasis-color":   true,
}

// nonColorSuffixes mark border/outline/background longhands that never
// hold a color.
var nonColorSuffixes = []string{
	"-width", "-radius", "-style", "-offset", "-image", "-spacing", "-collapse",
	"-position", "-size", "-repeat", "-clip", "-origin", "-attachment", "-blend-mode",
}

func isColorProperty(p string) bool {
	if colorProperties[p] {
		return true
	}
	if !strings.HasPrefix(p, "background") && !strings.HasPrefix(p, "border") && !strings.HasPrefix(p, "outline") {
		return false
	}
	for _, s := range nonColorSuffixes {
		if strings.HasSuffix(p, s) {
			return false
		}
	}
	return true
}

// colorPropertyKey is the metadata key for color findings on p.
func colorPropertyKey(p string) string {
	switch {
	case strings.HasPrefix(p, "border"), strings.HasPrefix(p, "outline"):
		return "border-color"
	case strings.HasPrefix(p, "background"):
		return "background-color"
	}
	return hooks.ResolvePropertyToMatch(p)
}

var densityProperties = map[string]bool{
	"top":            true,
	"right":          true,
	"bottom":         true,
	"left":           true,
	"gap":            true,
	"row-gap":        true,
	"column-gap":     true,
	"font-size":      true,
	"line-height":    true,
	"font-weight":    true,
	"letter-spacing": true,
	"border":         true,
	"border-top":     true,
	"border-right":   true,
	"border-bottom":  true,
	"border-left":    true,
	"border-inline":  true,
	"border-block":   true,
	"outline":        true,
}

// densityKeys are the resolved metadata keys that hold density values.
var densityKeys = map[string]bool{
	"margin":        true,
	"padding":       true,
	"width":         true,
	"top":           true,
	"border-width":  true,
	"border-radius": true,
}

func isDensityProperty(p string) bool {
	return densityProperties[p] || densityKeys[hooks.ResolvePropertyToMatch(p)]
}

// densityPropertyKey is the metadata key for density findings on p.
func densityPropertyKey(p string) string {
	if strings.HasPrefix(p, "border") || p == "outline" {
		if densityProperties[p] {
			return "border-width"
		}
	}
	return hooks.ResolvePropertyToMatch(p)
}

// allowsUnitless reports whether bare numbers are meaningful values of p.
func allowsUnitless(p string) bool {
	return p == "font-weight" || p == "line-height"
}

var genericFontFamilies = map[string]bool{
	"serif":         true,
	"sans-serif":    true,
	"monospace":     true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"ui-serif":      true,
	"ui-sans-serif": true,
	"ui-monospace":  true,
	"ui-rounded":    true,
	"math":          true,
	"emoji":         true,
	"fangsong":      true,
	"inherit":       true,
	"initial":       true,
	"unset":         true,
	"revert":        true,
}

var fontWeightKeywords = map[string]bool{
	"normal":  true,
	"bold":    true,
	"bolder":  true,
	"lighter": true,
}
