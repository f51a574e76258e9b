// Package engine analyzes single CSS declarations and reports hardcoded
// values that have, or lack, a styling hook replacement.
package engine

import (
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
	"github.com/yacobolo/stylehooks/internal/hooks"
	"github.com/yacobolo/stylehooks/internal/match"
)

// Engine matches declarations against a loaded hook mapping. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	mapping      *hooks.Mapping
	tokens       *hooks.TokenTable
	messages     *Messages
	log          *zap.Logger
	fontFallback bool

	// allowed lists, per hook name, the properties it is registered for
	allowed map[string][]string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log.Named("engine")
		}
	}
}

// WithTokens enables the deprecated design token check.
func WithTokens(t *hooks.TokenTable) Option {
	return func(e *Engine) { e.tokens = t }
}

// WithMessages replaces the built-in message catalog.
func WithMessages(m *Messages) Option {
	return func(e *Engine) {
		if m != nil {
			e.messages = m
		}
	}
}

// WithFontFallbackCheck toggles the generic font family check.
func WithFontFallbackCheck(enabled bool) Option {
	return func(e *Engine) { e.fontFallback = enabled }
}

// New returns an engine for mapping. An empty mapping is rejected since
// every lookup would silently miss.
func New(mapping *hooks.Mapping, opts ...Option) (*Engine, error) {
	if mapping == nil || mapping.Len() == 0 {
		return nil, hooks.ErrEmptyMapping
	}
	e := &Engine{
		mapping:      mapping,
		messages:     DefaultMessages(),
		log:          zap.NewNop(),
		fontFallback: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.allowed = allowedProperties(mapping)
	return e, nil
}

// Analyze inspects one declaration. property is matched case-insensitively;
// value must not carry !important. Malformed values produce no findings.
func (e *Engine) Analyze(property, value string) Result {
	prop := strings.ToLower(strings.TrimSpace(property))
	res := Result{Property: prop, Value: value}
	if prop == "" {
		return res
	}

	// custom properties are only checked for deprecated tokens
	res.Findings = append(res.Findings, e.legacyTokens(prop, value)...)

	if !strings.HasPrefix(prop, "--") {
		res.Findings = append(res.Findings, e.misusedHooks(prop, value)...)
	}

	if !strings.HasPrefix(prop, "--") && !cssvalue.IsWrappedInVar(value) {
		switch {
		case prop == match.ShadowProperty:
			res.Findings = append(res.Findings, e.boxShadow(prop, value)...)
		case prop == "font":
			res.Findings = append(res.Findings, e.fontShorthand(prop, value)...)
		default:
			if isColorProperty(prop) {
				res.Findings = append(res.Findings, e.colors(prop, value)...)
			}
			if isDensityProperty(prop) {
				res.Findings = append(res.Findings, e.densities(prop, value)...)
			}
			if prop == "font-family" && e.fontFallback {
				res.Findings = append(res.Findings, e.fontFamily(prop, value, cssvalue.Span{Start: 0, End: len(value)})...)
			}
		}
	}

	sort.SliceStable(res.Findings, func(i, j int) bool {
		return res.Findings[i].Span.Start < res.Findings[j].Span.Start
	})

	if len(res.Findings) > 0 {
		e.log.Debug("analyzed declaration",
			zap.String("property", prop),
			zap.String("value", value),
			zap.Int("findings", len(res.Findings)))
	}
	return res
}

func (e *Engine) finding(kind Kind, prop, value string, span cssvalue.Span, hookNames []string, replaceID, noneID string) Finding {
	vars := map[string]string{"value": value, "property": prop}
	id := noneID
	if len(hookNames) > 0 {
		id = replaceID
		vars["suggestions"] = formatSuggestions(hookNames)
		vars["hook"] = hookNames[0]
	}
	return Finding{
		Kind:     kind,
		Property: prop,
		Value:    value,
		Span:     span,
		Hooks:    hookNames,
		Message:  e.messages.Format(id, vars),
	}
}

func (e *Engine) boxShadow(prop, value string) []Finding {
	if len(match.ParseBoxShadowValue(value)) == 0 {
		return nil
	}
	span := trimmedSpan(value)
	text := value[span.Start:span.End]
	found := match.FindBoxShadowHooks(text, e.mapping)
	return []Finding{e.finding(KindShadow, prop, text, span, found, MsgShadowReplace, MsgShadowNone)}
}

func (e *Engine) colors(prop, value string) []Finding {
	key := colorPropertyKey(prop)
	var out []Finding
	cssvalue.ForEachValue(value, extractColor, skipForColor, func(text string, span cssvalue.Span) {
		hex, ok := cssvalue.ConvertToHex(text)
		if !ok {
			return
		}
		found := match.FindClosestColorHook(hex, e.mapping, key)
		out = append(out, e.finding(KindColor, prop, text, span, found, MsgColorReplace, MsgColorNone))
	})
	return out
}

func extractColor(v *cssvalue.Value, n cssvalue.Node) (string, bool) {
	switch n := n.(type) {
	case *cssvalue.Hash, *cssvalue.Ident:
		text := v.Text(n)
		return text, cssvalue.IsHookCandidate(text)
	case *cssvalue.Function:
		if cssvalue.IsColorFunction(n.Name) {
			return v.Text(n), true
		}
	}
	return "", false
}

// skipForColor prunes functions whose arguments are not color literals.
// Gradients are descended into; var, url, calc and the rest are not.
func skipForColor(n cssvalue.Node) bool {
	f, ok := n.(*cssvalue.Function)
	if !ok || f.Name == "" || cssvalue.IsColorFunction(f.Name) {
		return false
	}
	return !strings.HasSuffix(f.Name, "gradient")
}

func (e *Engine) densities(prop, value string) []Finding {
	key := densityPropertyKey(prop)
	var out []Finding
	cssvalue.ForEachValue(value, densityExtractor(prop), skipFunctions, func(text string, span cssvalue.Span) {
		if f, ok := e.density(prop, key, text, span); ok {
			out = append(out, f)
		}
	})
	return out
}

// density matches a single density value. Percentages are only reported
// when a hook exists for them.
func (e *Engine) density(prop, key, text string, span cssvalue.Span) (Finding, bool) {
	lookup := text
	if strings.EqualFold(text, "normal") && key == "font-weight" {
		lookup = "400"
	}
	v, ok := cssvalue.ParseDensityValue(lookup)
	if !ok || v.IsZero() {
		return Finding{}, false
	}
	found := match.GetStylingHooksForDensityValue(v, e.mapping, key)
	if len(found) == 0 && v.Unit == cssvalue.UnitPercent {
		return Finding{}, false
	}
	return e.finding(KindDensity, prop, text, span, found, MsgDensityReplace, MsgDensityNone), true
}

func densityExtractor(prop string) func(*cssvalue.Value, cssvalue.Node) (string, bool) {
	return func(v *cssvalue.Value, n cssvalue.Node) (string, bool) {
		switch n := n.(type) {
		case *cssvalue.Dimension, *cssvalue.Percentage:
			text := v.Text(n)
			_, ok := cssvalue.ParseUnitValue(text)
			return text, ok
		case *cssvalue.Number:
			return n.Text, allowsUnitless(prop)
		case *cssvalue.Ident:
			return n.Text, prop == "font-weight" && fontWeightKeywords[strings.ToLower(n.Text)]
		}
		return "", false
	}
}

func skipFunctions(n cssvalue.Node) bool {
	_, ok := n.(*cssvalue.Function)
	return ok
}

func (e *Engine) fontShorthand(prop, value string) []Finding {
	fv := match.ParseFont(value)
	var out []Finding

	numeric := func(p match.FontPart, key string) {
		if !p.IsSet() {
			return
		}
		if _, ok := cssvalue.ParseUnitValue(p.Text); !ok {
			return
		}
		if f, ok := e.density(prop, key, p.Text, p.Span); ok {
			out = append(out, f)
		}
	}
	numeric(fv.Size, "font-size")
	numeric(fv.LineHeight, "line-height")

	if fv.Weight.IsSet() {
		w := strings.ToLower(fv.Weight.Text)
		if _, ok := cssvalue.ParseUnitValue(w); ok || fontWeightKeywords[w] {
			if f, ok := e.density(prop, "font-weight", fv.Weight.Text, fv.Weight.Span); ok {
				out = append(out, f)
			}
		}
	}

	if e.fontFallback && fv.Family.IsSet() {
		out = append(out, e.fontFamily(prop, fv.Family.Text, fv.Family.Span)...)
	}
	return out
}

// fontFamily reports a family list that does not end in a generic family.
func (e *Engine) fontFamily(prop, families string, span cssvalue.Span) []Finding {
	v, err := cssvalue.Parse(families)
	if err != nil || len(v.Nodes) == 0 {
		return nil
	}
	for _, n := range v.Nodes {
		switch n := n.(type) {
		case *cssvalue.Function:
			if n.Name == "var" {
				return nil
			}
		case *cssvalue.Ident:
			if genericFontFamilies[strings.ToLower(n.Text)] {
				return nil
			}
		}
	}
	trimmed := trimmedSpan(families)
	text := families[trimmed.Start:trimmed.End]
	span = trimmed.Shift(span.Start)
	return []Finding{{
		Kind:     KindFontFamily,
		Property: prop,
		Value:    text,
		Span:     span,
		Message:  e.messages.Format(MsgFontFallback, map[string]string{"value": text, "property": prop}),
	}}
}

// legacyTokens reports var() references to deprecated tokens. The fallback
// of a var() is not inspected, so an applied fix is not reported again.
func (e *Engine) legacyTokens(prop, value string) []Finding {
	if e.tokens.Len() == 0 {
		return nil
	}
	v, err := cssvalue.Parse(value)
	if err != nil {
		return nil
	}
	var out []Finding
	cssvalue.Walk(v.Nodes, func(n cssvalue.Node) bool {
		f, ok := n.(*cssvalue.Function)
		if !ok || f.Name != "var" {
			return true
		}
		if len(f.Args) == 0 {
			return false
		}
		name, ok := f.Args[0].(*cssvalue.Ident)
		if !ok {
			return false
		}
		r, ok := e.tokens.Lookup(name.Text)
		if !ok {
			return false
		}
		text := v.Text(f)
		vars := map[string]string{"value": name.Text, "property": prop}
		id := MsgTokenNote
		if len(r.Hooks) > 0 {
			id = MsgTokenReplace
			vars["suggestions"] = formatSuggestions(r.Hooks)
			vars["hook"] = r.Hooks[0]
		} else {
			vars["note"] = r.Note
		}
		out = append(out, Finding{
			Kind:     KindToken,
			Property: prop,
			Value:    text,
			Span:     f.Span(),
			Hooks:    r.Hooks,
			Message:  e.messages.Format(id, vars),
		})
		return false
	})
	return out
}

// misusedHooks reports var() references to known hooks that are not
// registered for prop. Fallbacks are visited too.
func (e *Engine) misusedHooks(prop, value string) []Finding {
	v, err := cssvalue.Parse(value)
	if err != nil {
		return nil
	}
	resolved := hooks.ResolvePropertyToMatch(prop)
	var out []Finding
	cssvalue.Walk(v.Nodes, func(n cssvalue.Node) bool {
		f, ok := n.(*cssvalue.Function)
		if !ok || f.Name != "var" || len(f.Args) == 0 {
			return true
		}
		name, ok := f.Args[0].(*cssvalue.Ident)
		if !ok {
			return true
		}
		allowed, ok := e.allowed[name.Text]
		if !ok || hooks.IsPropertyAllowed(prop, allowed) || hooks.IsPropertyAllowed(resolved, allowed) {
			return true
		}
		msg := e.messages.Format(MsgHookMisuse, map[string]string{
			"value":      name.Text,
			"property":   prop,
			"properties": strings.Join(allowed, ", "),
		})
		out = append(out, Finding{
			Kind:     KindMisuse,
			Property: prop,
			Value:    v.Text(f),
			Span:     f.Span(),
			Message:  msg,
		})
		return true
	})
	return out
}

// allowedProperties indexes the mapping by hook name. A hook registered
// under several values allows the union of their properties.
func allowedProperties(m *hooks.Mapping) map[string][]string {
	out := make(map[string][]string)
	for _, entries := range m.All() {
		for _, entry := range entries {
			for _, p := range entry.Properties {
				if !slices.Contains(out[entry.Name], p) {
					out[entry.Name] = append(out[entry.Name], p)
				}
			}
		}
	}
	return out
}

// trimmedSpan is the span of s without surrounding whitespace.
func trimmedSpan(s string) cssvalue.Span {
	start := len(s) - len(strings.TrimLeft(s, " \t\r\n\f"))
	end := len(strings.TrimRight(s, " \t\r\n\f"))
	if end < start {
		end = start
	}
	return cssvalue.Span{Start: start, End: end}
}
