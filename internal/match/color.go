// Package match finds styling hooks for hardcoded CSS values: colors by
// perceptual distance, densities by unit equivalence, box-shadows by
// structure, and font shorthands by decomposition.
package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
	"github.com/yacobolo/stylehooks/internal/hooks"
)

// ColorThreshold is the largest CIEDE2000 distance at which a registered
// color is still offered as a replacement.
const ColorThreshold = 10.0

// MaxColorSuggestions caps the hooks returned by FindClosestColorHook.
const MaxColorSuggestions = 5

// Hook groups used to rank color candidates.
const (
	GroupSurface        = "surface"
	GroupSurfaceInverse = "surface-inverse"
	GroupBorders        = "borders"
	GroupBordersInverse = "borders-inverse"
	GroupTheme          = "theme"
	GroupFeedback       = "feedback"
	GroupReference      = "reference"
)

var (
	textGroups       = []string{GroupSurface, GroupTheme, GroupFeedback, GroupReference}
	backgroundGroups = []string{GroupSurface, GroupSurfaceInverse, GroupTheme, GroupFeedback, GroupReference}
	borderGroups     = []string{GroupBorders, GroupBordersInverse, GroupFeedback, GroupTheme, GroupReference}
	allGroups        = []string{GroupSurface, GroupSurfaceInverse, GroupBorders, GroupBordersInverse, GroupTheme, GroupFeedback, GroupReference}

	borderLike = regexp.MustCompile(`border|outline|stroke`)
)

// GroupOrder returns the group priority used for property. Groups not
// listed are never suggested for it.
func GroupOrder(property string) []string {
	p := strings.ToLower(property)
	switch {
	case p == "color" || p == "fill":
		return textGroups
	case strings.Contains(p, "background"):
		return backgroundGroups
	case borderLike.MatchString(p):
		return borderGroups
	}
	return allGroups
}

// DeltaE returns the CIEDE2000 distance between two colors on the usual
// 0-100 scale. Identical strings (ignoring case) are exactly 0. ok is false
// when either side is not a color.
func DeltaE(a, b string) (float64, bool) {
	if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
		return 0, cssvalue.IsValidColor(a)
	}
	ca, ok := toColorful(a)
	if !ok {
		return 0, false
	}
	cb, ok := toColorful(b)
	if !ok {
		return 0, false
	}
	return ca.DistanceCIEDE2000(cb) * 100, true
}

func toColorful(s string) (colorful.Color, bool) {
	if !cssvalue.IsValidColor(s) {
		return colorful.Color{}, false
	}
	c, err := csscolorparser.Parse(strings.TrimSpace(s))
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, true
}

type colorCandidate struct {
	distance float64
	group    string
	hook     string
}

// FindClosestColorHook returns up to MaxColorSuggestions hook names whose
// registered color lies within ColorThreshold of hexColor and which apply
// to property (or to any property). Names are grouped by category in the
// property's priority order and sorted by distance within a group.
func FindClosestColorHook(hexColor string, mapping *hooks.Mapping, property string) []string {
	if mapping == nil || !cssvalue.IsValidColor(hexColor) {
		return nil
	}

	byGroup := make(map[string][]colorCandidate)
	for value, entries := range mapping.All() {
		if !cssvalue.IsValidColor(value) {
			continue
		}
		distance, ok := DeltaE(hexColor, value)
		if !ok || distance > ColorThreshold {
			continue
		}
		for _, e := range entries {
			if !e.AppliesToAny(property) {
				continue
			}
			byGroup[e.Group] = append(byGroup[e.Group], colorCandidate{distance: distance, group: e.Group, hook: e.Name})
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, group := range GroupOrder(property) {
		candidates := byGroup[group]
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].distance < candidates[j].distance
		})
		for _, c := range candidates {
			if seen[c.hook] {
				continue
			}
			seen[c.hook] = true
			out = append(out, c.hook)
			if len(out) == MaxColorSuggestions {
				return out
			}
		}
	}
	return out
}
