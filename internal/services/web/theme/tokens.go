package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingToken reports a reference to a token the set does not define.
var ErrMissingToken = errors.New("missing theme token")

// Token names used by the default stylesheet.
const (
	TokenPrimary      = "primary"
	TokenPrimaryHover = "primary-hover"
	TokenSecondary    = "secondary"
	TokenAccent       = "accent"
	TokenSurface      = "surface"
	TokenBackground   = "background"
	TokenText         = "text"
	TokenTextMuted    = "text-muted"
	TokenBorder       = "border"
	TokenSuccess      = "success"
	TokenWarning      = "warning"
	TokenDanger       = "danger"
	TokenInfo         = "info"
	TokenRadius       = "radius"
	TokenSpacing      = "spacing"
	TokenFontFamily   = "font-family"
)

// Token is one named design constant.
type Token struct {
	Name  string
	Value string
}

// Tokens is an ordered, read-only set of design tokens.
type Tokens struct {
	entries []Token
	index   map[string]int
}

// NewTokens builds a token set, rejecting blank or duplicated names and
// blank values.
func NewTokens(entries ...Token) (Tokens, error) {
	set := Tokens{
		entries: make([]Token, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		value := strings.TrimSpace(entry.Value)
		if name == "" {
			return Tokens{}, errors.New("token name is required")
		}
		if value == "" {
			return Tokens{}, fmt.Errorf("token %q value is required", name)
		}
		if _, exists := set.index[name]; exists {
			return Tokens{}, fmt.Errorf("token %q is defined twice", name)
		}
		set.index[name] = len(set.entries)
		set.entries = append(set.entries, Token{Name: name, Value: value})
	}
	return set, nil
}

var defaultTokens = mustTokens(
	Token{Name: TokenPrimary, Value: "#2563eb"},
	Token{Name: TokenPrimaryHover, Value: "#1d4ed8"},
	Token{Name: TokenSecondary, Value: "#64748b"},
	Token{Name: TokenAccent, Value: "#0ea5e9"},
	Token{Name: TokenSurface, Value: "#ffffff"},
	Token{Name: TokenBackground, Value: "#f1f5f9"},
	Token{Name: TokenText, Value: "#0f172a"},
	Token{Name: TokenTextMuted, Value: "#64748b"},
	Token{Name: TokenBorder, Value: "#e2e8f0"},
	Token{Name: TokenSuccess, Value: "#16a34a"},
	Token{Name: TokenWarning, Value: "#d97706"},
	Token{Name: TokenDanger, Value: "#dc2626"},
	Token{Name: TokenInfo, Value: "#0284c7"},
	Token{Name: TokenRadius, Value: "0.75rem"},
	Token{Name: TokenSpacing, Value: "1rem"},
	Token{Name: TokenFontFamily, Value: "'Inter', system-ui, -apple-system, 'Segoe UI', sans-serif"},
)

// Default returns the process-wide SIP palette.
func Default() Tokens {
	return defaultTokens
}

func mustTokens(entries ...Token) Tokens {
	set, err := NewTokens(entries...)
	if err != nil {
		panic(err)
	}
	return set
}

// Lookup returns the value for name.
func (t Tokens) Lookup(name string) (string, error) {
	idx, ok := t.index[strings.TrimSpace(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingToken, name)
	}
	return t.entries[idx].Value, nil
}

// Has reports whether name is defined.
func (t Tokens) Has(name string) bool {
	_, ok := t.index[strings.TrimSpace(name)]
	return ok
}

// All returns a copy of the tokens in declaration order.
func (t Tokens) All() []Token {
	out := make([]Token, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of tokens in the set.
func (t Tokens) Len() int {
	return len(t.entries)
}

// CustomProperty returns the CSS custom property name for a token.
func CustomProperty(name string) string {
	return "--sip-" + strings.TrimSpace(name)
}
