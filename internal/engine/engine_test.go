package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yacobolo/stylehooks/internal/cssvalue"
	"github.com/yacobolo/stylehooks/internal/hooks"
)

const fixtureMetadata = `{
  "#fe0000": [{"name": "--slds-g-color-error-1", "properties": ["color", "fill"], "group": "feedback"}],
  "#0176d3": [
    {"name": "--slds-g-color-accent-1", "properties": ["color", "fill"], "group": "theme"},
    {"name": "--slds-g-color-border-accent-1", "properties": ["border-color"], "group": "borders"}
  ],
  "1rem": [
    {"name": "--slds-g-spacing-4", "properties": ["margin", "padding"], "group": "spacing"},
    {"name": "--slds-g-font-scale-2", "properties": ["font-size"], "group": "font"}
  ],
  "16px": [{"name": "--slds-g-spacing-alt", "properties": ["margin"], "group": "spacing"}],
  "1px": [{"name": "--slds-g-sizing-border-1", "properties": ["border-width"], "group": "sizing"}],
  "bold": [{"name": "--slds-g-font-weight-bold", "properties": ["font-weight"], "group": "font"}],
  "400": [{"name": "--slds-g-font-weight-regular", "properties": ["font-weight"], "group": "font"}],
  "1.5": [{"name": "--slds-g-font-lineheight-base", "properties": ["line-height"], "group": "font"}],
  "0 2px 3px 0 #00000027": [{"name": "--slds-g-shadow-1", "properties": ["box-shadow"], "group": "shadow"}]
}`

const fixtureTokens = `
--lwc-brandPrimary: --slds-g-color-accent-1
--lwc-spacingSmall: [--slds-g-spacing-2, --slds-g-spacing-3]
--lwc-heightHeader: Remove it.
`

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	m, err := hooks.ParseMapping([]byte(fixtureMetadata))
	require.NoError(t, err)
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	e, err := New(m, opts...)
	require.NoError(t, err)
	return e
}

func applyFix(value string, f Finding) string {
	fix, ok := f.Fix()
	if !ok {
		return value
	}
	return value[:f.Span.Start] + fix + value[f.Span.End:]
}

func TestNewRejectsEmptyMapping(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, hooks.ErrEmptyMapping)

	_, err = New(hooks.NewMapping())
	assert.ErrorIs(t, err, hooks.ErrEmptyMapping)
}

func TestAnalyzeScenarios(t *testing.T) {
	e := newTestEngine(t)

	t.Run("close color", func(t *testing.T) {
		res := e.Analyze("color", "#ff0000")
		require.Len(t, res.Findings, 1)
		f := res.Findings[0]
		assert.Equal(t, KindColor, f.Kind)
		assert.Equal(t, []string{"--slds-g-color-error-1"}, f.Hooks)
		fix, ok := f.Fix()
		require.True(t, ok)
		assert.Equal(t, "var(--slds-g-color-error-1, #ff0000)", fix)
		assert.True(t, res.HasSuggestions())
	})

	t.Run("zero width", func(t *testing.T) {
		res := e.Analyze("width", "0px")
		assert.Empty(t, res.Findings)
		assert.False(t, res.HasSuggestions())
	})

	t.Run("px matches rem hook", func(t *testing.T) {
		res := e.Analyze("font-size", "16px")
		require.Len(t, res.Findings, 1)
		assert.Equal(t, []string{"--slds-g-font-scale-2"}, res.Findings[0].Hooks)
	})

	t.Run("no replacement", func(t *testing.T) {
		res := e.Analyze("padding", "20px")
		require.Len(t, res.Findings, 1)
		f := res.Findings[0]
		assert.Empty(t, f.Hooks)
		assert.Contains(t, f.Message, "no replacement")
		assert.False(t, res.HasSuggestions())
		assert.Empty(t, res.Suggestions())
		_, ok := f.Fix()
		assert.False(t, ok)
	})

	t.Run("box shadow", func(t *testing.T) {
		res := e.Analyze("box-shadow", "0px 2px 3px 0px #00000027")
		require.Len(t, res.Findings, 1)
		f := res.Findings[0]
		assert.Equal(t, KindShadow, f.Kind)
		fix, ok := f.Fix()
		require.True(t, ok)
		assert.Equal(t, "var(--slds-g-shadow-1, 0px 2px 3px 0px #00000027)", fix)
		assert.Equal(t, cssvalue.Span{Start: 0, End: 25}, f.Span)
	})

	t.Run("already a var", func(t *testing.T) {
		assert.Empty(t, e.Analyze("color", "var(--custom-color)").Findings)
	})
}

func TestAnalyzeFixIsIdempotent(t *testing.T) {
	e := newTestEngine(t)

	decls := []struct{ property, value string }{
		{"color", "#ff0000"},
		{"font-size", "16px"},
		{"box-shadow", "0px 2px 3px 0px #00000027"},
		{"border", "1px solid #0176d3"},
		{"font-weight", "normal"},
	}
	for _, d := range decls {
		t.Run(d.property, func(t *testing.T) {
			res := e.Analyze(d.property, d.value)
			require.NotEmpty(t, res.Findings)

			fixed := d.value
			for i := len(res.Findings) - 1; i >= 0; i-- {
				fixed = applyFix(fixed, res.Findings[i])
			}
			assert.NotEqual(t, d.value, fixed)
			assert.Empty(t, e.Analyze(d.property, fixed).Findings, "fixed value %q", fixed)
		})
	}
}

func TestAnalyzeBorderShorthand(t *testing.T) {
	e := newTestEngine(t)

	res := e.Analyze("border", "1px solid #0176d3")
	require.Len(t, res.Findings, 2)

	assert.Equal(t, KindDensity, res.Findings[0].Kind)
	assert.Equal(t, "1px", res.Findings[0].Value)
	assert.Equal(t, cssvalue.Span{Start: 0, End: 3}, res.Findings[0].Span)
	assert.Equal(t, []string{"--slds-g-sizing-border-1"}, res.Findings[0].Hooks)

	assert.Equal(t, KindColor, res.Findings[1].Kind)
	assert.Equal(t, cssvalue.Span{Start: 10, End: 17}, res.Findings[1].Span)
	assert.Equal(t, []string{"--slds-g-color-border-accent-1"}, res.Findings[1].Hooks)
}

func TestAnalyzeMultipleCandidates(t *testing.T) {
	e := newTestEngine(t)

	res := e.Analyze("margin", "16px")
	require.Len(t, res.Findings, 1)
	f := res.Findings[0]
	assert.Equal(t, []string{"--slds-g-spacing-4", "--slds-g-spacing-alt"}, f.Hooks)

	_, ok := f.Fix()
	assert.False(t, ok)
	assert.Contains(t, f.Message, "\n1. --slds-g-spacing-4\n2. --slds-g-spacing-alt")

	sugg := res.Suggestions()
	require.Len(t, sugg, 2)
	assert.Equal(t, "var(--slds-g-spacing-alt, 16px)", sugg[1].Replacement)
	assert.Equal(t, cssvalue.Span{Start: 0, End: 4}, sugg[1].Span)
}

func TestAnalyzeFontShorthand(t *testing.T) {
	e := newTestEngine(t)

	res := e.Analyze("font", "bold 16px/1.5 Arial")
	require.Len(t, res.Findings, 4)

	kinds := make([]Kind, 0, len(res.Findings))
	values := make([]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		kinds = append(kinds, f.Kind)
		values = append(values, f.Value)
	}
	assert.Equal(t, []Kind{KindDensity, KindDensity, KindDensity, KindFontFamily}, kinds)
	assert.Equal(t, []string{"bold", "16px", "1.5", "Arial"}, values)
	assert.Equal(t, []string{"--slds-g-font-weight-bold"}, res.Findings[0].Hooks)
	assert.Equal(t, []string{"--slds-g-font-scale-2"}, res.Findings[1].Hooks)
	assert.Equal(t, []string{"--slds-g-font-lineheight-base"}, res.Findings[2].Hooks)
	assert.True(t, res.Findings[3].IsAdvisory())
}

func TestAnalyzeFontFamily(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.Analyze("font-family", "Arial, sans-serif").Findings)
	assert.Empty(t, e.Analyze("font-family", "var(--font)").Findings)

	res := e.Analyze("font-family", " Arial, Helvetica ")
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "Arial, Helvetica", res.Findings[0].Value)
	assert.Equal(t, cssvalue.Span{Start: 1, End: 17}, res.Findings[0].Span)

	off := newTestEngine(t, WithFontFallbackCheck(false))
	assert.Empty(t, off.Analyze("font-family", "Arial").Findings)
}

func TestAnalyzeSkips(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		property string
		value    string
	}{
		{name: "custom property", property: "--brand", value: "#ff0000"},
		{name: "transparent", property: "background-color", value: "transparent"},
		{name: "currentColor", property: "border-color", value: "currentColor"},
		{name: "inside calc", property: "margin", value: "calc(16px + 1rem)"},
		{name: "var fallback", property: "color", value: "var(--x, #ff0000)"},
		{name: "url", property: "background", value: "url(#ff0000)"},
		{name: "malformed", property: "color", value: "#ff0000 ("},
		{name: "non hook property", property: "display", value: "block"},
		{name: "unitless margin", property: "margin", value: "0"},
		{name: "unmatched percentage", property: "width", value: "100%"},
		{name: "shadow none", property: "box-shadow", value: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, e.Analyze(tt.property, tt.value).Findings)
		})
	}
}

func TestAnalyzeGradient(t *testing.T) {
	e := newTestEngine(t)

	res := e.Analyze("background", "linear-gradient(#0176d3, transparent)")
	require.Len(t, res.Findings, 1)
	f := res.Findings[0]
	assert.Equal(t, KindColor, f.Kind)
	assert.Equal(t, "#0176d3", f.Value)
	assert.Equal(t, cssvalue.Span{Start: 16, End: 23}, f.Span)
}

func TestAnalyzeLegacyTokens(t *testing.T) {
	table, err := hooks.ParseTokenTable([]byte(fixtureTokens))
	require.NoError(t, err)
	e := newTestEngine(t, WithTokens(table))

	res := e.Analyze("color", "var(--lwc-brandPrimary)")
	require.Len(t, res.Findings, 1)
	f := res.Findings[0]
	assert.Equal(t, KindToken, f.Kind)
	fix, ok := f.Fix()
	require.True(t, ok)
	assert.Equal(t, "var(--slds-g-color-accent-1, var(--lwc-brandPrimary))", fix)
	assert.Empty(t, e.Analyze("color", fix).Findings)

	res = e.Analyze("padding", "var(--lwc-spacingSmall) 4px")
	require.NotEmpty(t, res.Findings)
	assert.Equal(t, []string{"--slds-g-spacing-2", "--slds-g-spacing-3"}, res.Findings[0].Hooks)

	res = e.Analyze("--my-brand", "var(--lwc-brandPrimary)")
	require.Len(t, res.Findings, 1)
	assert.Equal(t, KindToken, res.Findings[0].Kind)
	assert.Empty(t, e.Analyze("--my-brand", "#ff0000").Findings)

	res = e.Analyze("height", "var(--lwc-heightHeader)")
	require.Len(t, res.Findings, 1)
	assert.Empty(t, res.Findings[0].Hooks)
	assert.True(t, strings.HasSuffix(res.Findings[0].Message, "Remove it."))
}

func TestMessages(t *testing.T) {
	m := DefaultMessages()
	got := m.Format(MsgColorNone, map[string]string{"value": "#123456"})
	assert.Equal(t, "There's no replacement styling hook for the #123456 static value. Remove the static value.", got)
	assert.Equal(t, "missing.id: x", m.Format("missing.id", map[string]string{"value": "x"}))

	_, err := ParseMessages([]byte(""))
	assert.Error(t, err)
}

func TestLoadMessagesOverrides(t *testing.T) {
	path := t.TempDir() + "/messages.yaml"
	require.NoError(t, writeFile(path, "color.none: \"no hook for {value}\"\n"))

	m, err := LoadMessages(path)
	require.NoError(t, err)
	assert.Equal(t, "no hook for red", m.Format(MsgColorNone, map[string]string{"value": "red"}))
	assert.Contains(t, m.Format(MsgShadowNone, map[string]string{"value": "x"}), "box-shadow")

	e := newTestEngine(t, WithMessages(m))
	res := e.Analyze("padding", "20px")
	require.Len(t, res.Findings, 1)
	assert.Contains(t, res.Findings[0].Message, "20px")
}

func misuses(res Result) []Finding {
	var out []Finding
	for _, f := range res.Findings {
		if f.Kind == KindMisuse {
			out = append(out, f)
		}
	}
	return out
}

func TestAnalyzeMisusedHooks(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		property string
		value    string
		want     []cssvalue.Span
	}{
		{name: "spacing hook on color", property: "color", value: "var(--slds-g-spacing-4)", want: []cssvalue.Span{{Start: 0, End: 23}}},
		{name: "longhand resolves to registered shorthand", property: "margin-top", value: "var(--slds-g-spacing-4)"},
		{name: "one of two references", property: "padding", value: "var(--slds-g-spacing-4) var(--slds-g-font-scale-2)", want: []cssvalue.Span{{Start: 24, End: 50}}},
		{name: "shorthand expands to registered longhand", property: "border", value: "solid var(--slds-g-color-border-accent-1)"},
		{name: "inside a fallback", property: "color", value: "var(--x, var(--slds-g-spacing-4))", want: []cssvalue.Span{{Start: 9, End: 32}}},
		{name: "inside calc", property: "width", value: "calc(var(--slds-g-spacing-4) * 2)", want: []cssvalue.Span{{Start: 5, End: 28}}},
		{name: "unknown hook", property: "color", value: "var(--app-gutter)"},
		{name: "custom property", property: "--gutter", value: "var(--slds-g-spacing-4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := misuses(e.Analyze(tt.property, tt.value))
			var spans []cssvalue.Span
			for _, f := range found {
				spans = append(spans, f.Span)
			}
			assert.Equal(t, tt.want, spans)
		})
	}
}

func TestMisusedHookFinding(t *testing.T) {
	e := newTestEngine(t)

	res := e.Analyze("color", "var(--slds-g-spacing-4)")
	require.Len(t, res.Findings, 1)
	f := res.Findings[0]
	assert.Equal(t, KindMisuse, f.Kind)
	assert.Equal(t, "var(--slds-g-spacing-4)", f.Value)
	assert.Empty(t, f.Hooks)
	assert.True(t, f.IsAdvisory())
	_, ok := f.Fix()
	assert.False(t, ok)
	assert.Equal(t, "The --slds-g-spacing-4 styling hook isn't meant for the color property. Use it only on margin, padding.", f.Message)
}
