package match

import (
	"strings"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
)

var (
	fontStyleKeywords   = keywordSet("normal", "italic", "oblique")
	fontWeightKeywords  = keywordSet("normal", "bold", "bolder", "lighter", "100", "200", "300", "400", "500", "600", "700", "800", "900")
	fontVariantKeywords = keywordSet("normal", "small-caps")
	fontSizeKeywords    = keywordSet("xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large", "smaller", "larger")
)

func keywordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// FontPart is one component of a font shorthand and its span in the value.
type FontPart struct {
	Text string
	Span cssvalue.Span
}

// IsSet reports whether the component was present.
func (p FontPart) IsSet() bool {
	return p.Text != ""
}

// FontValue is a decomposed font shorthand. Absent components are zero.
type FontValue struct {
	Family     FontPart
	Size       FontPart
	LineHeight FontPart
	Style      FontPart
	Variant    FontPart
	Weight     FontPart
}

type fontToken struct {
	text string
	span cssvalue.Span
	node cssvalue.Node
}

func (t fontToken) part() FontPart {
	return FontPart{Text: t.text, Span: t.span}
}

func (t fontToken) is(sep string) bool {
	op, ok := t.node.(*cssvalue.Operator)
	return ok && op.Text == sep
}

// ParseFont splits a font shorthand into its components. The family list
// starts at the name before the first top-level comma; the tokens around a
// top-level "/" are size and line-height; style, weight and variant are then
// picked by keyword from the right, and leftovers fill family, size, weight,
// variant and style in that order. Malformed values yield a zero FontValue.
func ParseFont(text string) FontValue {
	var fv FontValue
	v, err := cssvalue.Parse(text)
	if err != nil {
		return fv
	}

	toks := make([]fontToken, 0, len(v.Nodes))
	for _, n := range v.Nodes {
		toks = append(toks, fontToken{text: v.Text(n), span: n.Span(), node: n})
	}

	if i := indexOf(toks, func(t fontToken) bool { return t.is(",") }); i > 0 {
		start := i - 1
		for start > 0 && isFamilyWord(toks[start-1]) {
			start--
		}
		span := cssvalue.Span{Start: toks[start].span.Start, End: toks[len(toks)-1].span.End}
		fv.Family = FontPart{Text: text[span.Start:span.End], Span: span}
		toks = toks[:start]
	}

	if i := indexOf(toks, func(t fontToken) bool { return t.is("/") }); i > 0 && i+1 < len(toks) {
		fv.Size = toks[i-1].part()
		fv.LineHeight = toks[i+1].part()
		toks = append(toks[:i-1:i-1], toks[i+2:]...)
	}

	take := func(set map[string]bool) (FontPart, bool) {
		for i := len(toks) - 1; i >= 0; i-- {
			if set[strings.ToLower(toks[i].text)] {
				p := toks[i].part()
				toks = append(toks[:i:i], toks[i+1:]...)
				return p, true
			}
		}
		return FontPart{}, false
	}
	if p, ok := take(fontStyleKeywords); ok {
		fv.Style = p
	}
	if p, ok := take(fontWeightKeywords); ok {
		fv.Weight = p
	}
	if p, ok := take(fontVariantKeywords); ok {
		fv.Variant = p
	}

	pop := func() FontPart {
		p := toks[len(toks)-1].part()
		toks = toks[:len(toks)-1]
		return p
	}
	if !fv.Family.IsSet() && len(toks) > 0 {
		fv.Family = pop()
	}
	if !fv.Size.IsSet() && len(toks) > 0 {
		fv.Size = pop()
	}
	if !fv.Weight.IsSet() && len(toks) > 0 {
		fv.Weight = pop()
	}
	if !fv.Variant.IsSet() && len(toks) > 1 {
		fv.Variant = pop()
	}
	if !fv.Style.IsSet() && len(toks) > 0 {
		fv.Style = pop()
	}
	return fv
}

// isFamilyWord reports whether t can be part of an unquoted multi-word
// family name such as Times New Roman. Font keywords end the name.
func isFamilyWord(t fontToken) bool {
	id, ok := t.node.(*cssvalue.Ident)
	if !ok {
		return false
	}
	w := strings.ToLower(id.Text)
	return !fontStyleKeywords[w] && !fontWeightKeywords[w] && !fontVariantKeywords[w] && !fontSizeKeywords[w]
}

func indexOf(toks []fontToken, pred func(fontToken) bool) int {
	for i, t := range toks {
		if pred(t) {
			return i
		}
	}
	return -1
}
