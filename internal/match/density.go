package match

import (
	"strings"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
	"github.com/yacobolo/stylehooks/internal/hooks"
)

// GetStylingHooksForDensityValue returns, in mapping order, the hooks
// registered at a value equal to v or to its px/rem equivalent and listing
// property exactly. property must already be resolved with
// hooks.ResolvePropertyToMatch. Callers filter zero values out beforehand.
func GetStylingHooksForDensityValue(v cssvalue.UnitValue, mapping *hooks.Mapping, property string) []string {
	if mapping == nil {
		return nil
	}

	accept := func(key string) bool {
		if v.IsKeyword() {
			return strings.EqualFold(strings.TrimSpace(key), v.Keyword)
		}
		kv, ok := cssvalue.ParseUnitValue(key)
		return ok && kv.Equal(v)
	}
	if !v.IsKeyword() {
		if alt, ok := cssvalue.ToAlternateUnitValue(v.Number, v.Unit); ok {
			exact := accept
			accept = func(key string) bool {
				if exact(key) {
					return true
				}
				kv, ok := cssvalue.ParseUnitValue(key)
				return ok && kv.Equal(alt)
			}
		}
	}

	var out []string
	seen := make(map[string]bool)
	for key, entries := range mapping.All() {
		if !accept(key) {
			continue
		}
		for _, e := range entries {
			if seen[e.Name] || !e.AppliesTo(property) {
				continue
			}
			seen[e.Name] = true
			out = append(out, e.Name)
		}
	}
	return out
}
