package engine

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessagesYAML []byte

// Message identifiers.
const (
	MsgColorReplace   = "color.replace"
	MsgColorNone      = "color.none"
	MsgDensityReplace = "density.replace"
	MsgDensityNone    = "density.none"
	MsgShadowReplace  = "shadow.replace"
	MsgShadowNone     = "shadow.none"
	MsgTokenReplace   = "token.replace"
	MsgTokenNote      = "token.note"
	MsgFontFallback   = "font-family.fallback"
	MsgHookMisuse     = "hook.misuse"
)

// Messages is a catalog of finding message templates.
type Messages struct {
	templates map[string]string
}

// DefaultMessages returns the built-in catalog.
func DefaultMessages() *Messages {
	m, err := ParseMessages(defaultMessagesYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in messages: %v", err))
	}
	return m
}

// ParseMessages decodes a flat id -> template YAML document.
func ParseMessages(data []byte) (*Messages, error) {
	var templates map[string]string
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parse messages: %w", err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("parse messages: no templates")
	}
	return &Messages{templates: templates}, nil
}

// LoadMessages reads a message file and layers it over the built-in
// catalog, so a file only needs the templates it changes.
func LoadMessages(path string) (*Messages, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	override, err := ParseMessages(data)
	if err != nil {
		return nil, err
	}
	m := DefaultMessages()
	for id, tmpl := range override.templates {
		m.templates[id] = tmpl
	}
	return m, nil
}

// Format renders the template id with vars. Unknown ids render as the id
// followed by the value, so a finding never loses its subject.
func (m *Messages) Format(id string, vars map[string]string) string {
	tmpl, ok := m.templates[id]
	if !ok {
		return id + ": " + vars["value"]
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// formatSuggestions renders one hook inline and several as a numbered list,
// one per line.
func formatSuggestions(hooks []string) string {
	if len(hooks) == 1 {
		return hooks[0]
	}
	var b strings.Builder
	for i, h := range hooks {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(h)
	}
	return b.String()
}
