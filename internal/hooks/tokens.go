package hooks

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenReplacement is the guidance registered for a deprecated design token.
// Hooks lists candidate replacement hooks; Note carries free-text guidance
// when there is no direct replacement.
type TokenReplacement struct {
	Hooks []string
	Note  string
}

// TokenTable maps deprecated token names (e.g. "--lwc-brandPrimary") to
// their replacement guidance.
type TokenTable struct {
	tokens map[string]TokenReplacement
}

// LoadTokenTable reads a deprecated token file. Values are either a hook
// name, a list of hook names, or a sentence of guidance.
func LoadTokenTable(path string) (*TokenTable, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token table: %w", err)
	}
	t, err := ParseTokenTable(data)
	if err != nil {
		return nil, fmt.Errorf("parse token table %s: %w", path, err)
	}
	return t, nil
}

// ParseTokenTable decodes a deprecated token table.
func ParseTokenTable(data []byte) (*TokenTable, error) {
	root, err := decodeRootMapping(data)
	if err != nil {
		return nil, err
	}

	t := &TokenTable{tokens: make(map[string]TokenReplacement)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		name := normalizeTokenName(key.Value)

		switch val.Kind {
		case yaml.ScalarNode:
			if strings.HasPrefix(val.Value, "--") {
				t.tokens[name] = TokenReplacement{Hooks: []string{val.Value}}
			} else {
				t.tokens[name] = TokenReplacement{Note: val.Value}
			}
		case yaml.SequenceNode:
			var hooks []string
			if err := val.Decode(&hooks); err != nil {
				return nil, fmt.Errorf("token %q (line %d): %w", key.Value, key.Line, err)
			}
			t.tokens[name] = TokenReplacement{Hooks: hooks}
		default:
			return nil, fmt.Errorf("token %q (line %d): expected string or list, got %s", key.Value, key.Line, kindName(val.Kind))
		}
	}

	if len(t.tokens) == 0 {
		return nil, ErrEmptyMapping
	}
	return t, nil
}

// Lookup returns the replacement for a token name, with or without the
// leading "--".
func (t *TokenTable) Lookup(name string) (TokenReplacement, bool) {
	if t == nil {
		return TokenReplacement{}, false
	}
	r, ok := t.tokens[normalizeTokenName(name)]
	return r, ok
}

// Len returns the number of deprecated tokens.
func (t *TokenTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tokens)
}

func normalizeTokenName(name string) string {
	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return name
}
