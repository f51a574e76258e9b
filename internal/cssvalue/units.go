// Package cssvalue parses CSS property values into a small typed tree and
// provides the unit and color primitives the hook matchers are built on.
package cssvalue

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is a length unit recognised by the density matcher.
type Unit string

// Supported units. UnitNone marks unitless numerics (font-weight, line-height).
const (
	UnitNone    Unit = ""
	UnitPx      Unit = "px"
	UnitRem     Unit = "rem"
	UnitPercent Unit = "%"
)

// remBase is the px size of 1rem.
const remBase = 16

// UnitValue is a parsed numeric value with an optional unit, or a keyword
// such as "bold". Keyword is non-empty only for the keyword variant.
type UnitValue struct {
	Number  float64
	Unit    Unit
	Keyword string
}

// IsKeyword reports whether v is the keyword variant.
func (v UnitValue) IsKeyword() bool {
	return v.Keyword != ""
}

// IsZero reports whether v is a numeric zero. Zero values are never hook
// replacement candidates.
func (v UnitValue) IsZero() bool {
	return !v.IsKeyword() && v.Number == 0
}

// Equal compares unit and number exactly; keywords compare case-insensitively.
func (v UnitValue) Equal(o UnitValue) bool {
	if v.IsKeyword() || o.IsKeyword() {
		return strings.EqualFold(v.Keyword, o.Keyword)
	}
	return v.Unit == o.Unit && v.Number == o.Number
}

// String renders v in CSS syntax.
func (v UnitValue) String() string {
	if v.IsKeyword() {
		return v.Keyword
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64) + string(v.Unit)
}

var unitValuePattern = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))(px|rem|%)?$`)

// ParseUnitValue parses a single numeric token with an optional px, rem or %
// unit. Anything else (other units, several tokens) is rejected.
func ParseUnitValue(text string) (UnitValue, bool) {
	m := unitValuePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return UnitValue{}, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return UnitValue{}, false
	}
	return UnitValue{Number: n, Unit: Unit(m[2])}, true
}

var keywordPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z-]*$`)

// ParseDensityValue is ParseUnitValue extended with the keyword variant.
func ParseDensityValue(text string) (UnitValue, bool) {
	if v, ok := ParseUnitValue(text); ok {
		return v, true
	}
	text = strings.TrimSpace(text)
	if keywordPattern.MatchString(text) {
		return UnitValue{Keyword: strings.ToLower(text)}, true
	}
	return UnitValue{}, false
}

// ToAlternateUnitValue converts between px and rem. Other units have no
// alternate representation.
func ToAlternateUnitValue(number float64, unit Unit) (UnitValue, bool) {
	switch unit {
	case UnitPx:
		rem := math.Round(number/remBase*10000) / 10000
		return UnitValue{Number: rem, Unit: UnitRem}, true
	case UnitRem:
		return UnitValue{Number: math.Round(number * remBase), Unit: UnitPx}, true
	}
	return UnitValue{}, false
}
