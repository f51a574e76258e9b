package match

import (
	"strconv"
	"strings"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
	"github.com/yacobolo/stylehooks/internal/hooks"
)

// ShadowProperty is the property box-shadow hooks are registered for.
const ShadowProperty = "box-shadow"

const zeroLength = "0px"

// shadowUnits are the length units accepted in a shadow layer.
var shadowUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "%": true, "ch": true, "ex": true,
	"vh": true, "vw": true, "vmin": true, "vmax": true,
	"pt": true, "pc": true, "cm": true, "mm": true, "in": true, "q": true,
}

// ShadowRecord is one comma-separated layer of a box-shadow value. Length
// fields hold normalized lengths; an empty field was not given.
type ShadowRecord struct {
	OffsetX      string
	OffsetY      string
	BlurRadius   string
	SpreadRadius string
	Color        string
	Inset        bool
}

func (r *ShadowRecord) setLength(i int, v string) {
	switch i {
	case 0:
		r.OffsetX = v
	case 1:
		r.OffsetY = v
	case 2:
		r.BlurRadius = v
	case 3:
		r.SpreadRadius = v
	}
}

// ParseBoxShadowValue decomposes a box-shadow value into its layers. Lengths
// are assigned positionally; color and inset may appear anywhere in a layer.
// Only the first color of a layer is kept and function arguments are never
// inspected. Layers without any recognised part are dropped, and malformed
// values yield nil.
func ParseBoxShadowValue(text string) []ShadowRecord {
	v, err := cssvalue.Parse(text)
	if err != nil {
		return nil
	}

	var out []ShadowRecord
	for _, layer := range splitTopLevel(v.Nodes, ",") {
		var (
			rec     ShadowRecord
			lengths int
			found   bool
		)
		for _, n := range layer {
			if l, ok := shadowLength(n); ok {
				rec.setLength(lengths, l)
				lengths++
				found = true
				continue
			}
			if id, ok := n.(*cssvalue.Ident); ok && strings.EqualFold(id.Text, "inset") {
				rec.Inset = true
				found = true
				continue
			}
			if c, ok := shadowColor(v, n); ok {
				if rec.Color == "" {
					rec.Color = c
				}
				found = true
			}
		}
		if found {
			out = append(out, rec)
		}
	}
	return out
}

func shadowLength(n cssvalue.Node) (string, bool) {
	switch n := n.(type) {
	case *cssvalue.Dimension:
		if !shadowUnits[n.Unit] {
			return "", false
		}
		return normalizeLength(n.Number, n.Unit), true
	case *cssvalue.Percentage:
		return normalizeLength(n.Number, "%"), true
	case *cssvalue.Number:
		if f, err := strconv.ParseFloat(n.Text, 64); err == nil && f == 0 {
			return zeroLength, true
		}
	}
	return "", false
}

func shadowColor(v *cssvalue.Value, n cssvalue.Node) (string, bool) {
	switch n := n.(type) {
	case *cssvalue.Hash, *cssvalue.Ident:
		text := v.Text(n)
		if cssvalue.IsValidColor(text) {
			return text, true
		}
	case *cssvalue.Function:
		if cssvalue.IsColorFunction(n.Name) {
			return v.Text(n), true
		}
	}
	return "", false
}

func normalizeLength(number, unit string) string {
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return number + unit
	}
	if f == 0 {
		return zeroLength
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + unit
}

// splitTopLevel splits nodes on top-level operators equal to sep.
func splitTopLevel(nodes []cssvalue.Node, sep string) [][]cssvalue.Node {
	var (
		out     [][]cssvalue.Node
		current []cssvalue.Node
	)
	for _, n := range nodes {
		if op, ok := n.(*cssvalue.Operator); ok && op.Text == sep {
			out = append(out, current)
			current = nil
			continue
		}
		current = append(current, n)
	}
	return append(out, current)
}

// IsBoxShadowMatch reports whether two decomposed shadows are structurally
// equal: same layers in the same order, equal colors and inset flags, and
// equal lengths where a missing length equals 0px.
func IsBoxShadowMatch(a, b []ShadowRecord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Color != y.Color || x.Inset != y.Inset {
			return false
		}
		if lengthOrZero(x.OffsetX) != lengthOrZero(y.OffsetX) ||
			lengthOrZero(x.OffsetY) != lengthOrZero(y.OffsetY) ||
			lengthOrZero(x.BlurRadius) != lengthOrZero(y.BlurRadius) ||
			lengthOrZero(x.SpreadRadius) != lengthOrZero(y.SpreadRadius) {
			return false
		}
	}
	return true
}

func lengthOrZero(s string) string {
	if s == "" || s == "0" {
		return zeroLength
	}
	return s
}

// FindBoxShadowHooks returns the box-shadow hooks of the first mapping value
// that structurally matches text. It returns nil when text has no layers or
// nothing matches.
func FindBoxShadowHooks(text string, mapping *hooks.Mapping) []string {
	if mapping == nil {
		return nil
	}
	want := ParseBoxShadowValue(text)
	if len(want) == 0 {
		return nil
	}

	for value, entries := range mapping.All() {
		var names []string
		for _, e := range entries {
			if e.AppliesToAny(ShadowProperty) {
				names = append(names, e.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		if IsBoxShadowMatch(want, ParseBoxShadowValue(value)) {
			return names
		}
	}
	return nil
}
