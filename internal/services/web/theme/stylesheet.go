package theme

import (
	"fmt"
	"strings"
)

// Class names consumed by page templates. Renaming any of these breaks every
// page that uses them.
const (
	ClassButtonPrimary = "btn-sip-primary"
	ClassCard          = "card-sip"
	ClassNavbar        = "navbar-sip"
	ClassPageTitle     = "page-title"
	ClassTextMuted     = "text-muted-sip"
)

// Rule is one CSS rule. Declaration values may reference tokens with
// {token-name}; references resolve to var(--sip-token-name).
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Declaration is one CSS property assignment.
type Declaration struct {
	Property string
	Value    string
}

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Rules returns the SIP class contract rules.
func Rules() []Rule {
	return []Rule{
		{Selector: "body", Declarations: []Declaration{
			decl("font-family", "{font-family}"),
			decl("background-color", "{background}"),
			decl("color", "{text}"),
		}},
		{Selector: "." + ClassNavbar, Declarations: []Declaration{
			decl("background-color", "{surface}"),
			decl("border-bottom", "1px solid {border}"),
			decl("padding-top", "calc({spacing} / 2)"),
			decl("padding-bottom", "calc({spacing} / 2)"),
		}},
		{Selector: "." + ClassNavbar + " .navbar-brand", Declarations: []Declaration{
			decl("color", "{primary}"),
			decl("font-weight", "700"),
		}},
		{Selector: "." + ClassNavbar + " .nav-link.active", Declarations: []Declaration{
			decl("color", "{primary}"),
			decl("font-weight", "600"),
		}},
		{Selector: "." + ClassCard, Declarations: []Declaration{
			decl("background-color", "{surface}"),
			decl("border", "1px solid {border}"),
			decl("border-radius", "{radius}"),
			decl("box-shadow", "0 1px 3px rgba(15, 23, 42, 0.08)"),
			decl("padding", "calc({spacing} * 2)"),
		}},
		{Selector: "." + ClassPageTitle, Declarations: []Declaration{
			decl("color", "{text}"),
			decl("font-weight", "700"),
			decl("margin-bottom", "{spacing}"),
		}},
		{Selector: "." + ClassPageTitle + " .bi", Declarations: []Declaration{
			decl("color", "{primary}"),
			decl("margin-right", "calc({spacing} / 2)"),
		}},
		{Selector: "." + ClassButtonPrimary, Declarations: []Declaration{
			decl("background-color", "{primary}"),
			decl("border-color", "{primary}"),
			decl("color", "#ffffff"),
			decl("border-radius", "calc({radius} / 1.5)"),
		}},
		{Selector: "." + ClassButtonPrimary + ":hover, ." + ClassButtonPrimary + ":focus", Declarations: []Declaration{
			decl("background-color", "{primary-hover}"),
			decl("border-color", "{primary-hover}"),
			decl("color", "#ffffff"),
		}},
		{Selector: "." + ClassTextMuted, Declarations: []Declaration{
			decl("color", "{text-muted}"),
		}},
		{Selector: "." + ClassTextMuted + " a", Declarations: []Declaration{
			decl("color", "{accent}"),
		}},
		{Selector: ".invalid-feedback", Declarations: []Declaration{
			decl("color", "{danger}"),
		}},
	}
}

// Stylesheet renders the token custom properties followed by the default
// rules.
func (t Tokens) Stylesheet() (string, error) {
	return t.StylesheetWithRules(Rules())
}

// StylesheetWithRules renders the token custom properties followed by rules.
// It fails with ErrMissingToken when a rule references an undefined token.
func (t Tokens) StylesheetWithRules(rules []Rule) (string, error) {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, token := range t.entries {
		fmt.Fprintf(&b, "  %s: %s;\n", CustomProperty(token.Name), token.Value)
	}
	b.WriteString("}\n")
	for _, rule := range rules {
		selector := strings.TrimSpace(rule.Selector)
		if selector == "" {
			return "", fmt.Errorf("rule selector is required")
		}
		fmt.Fprintf(&b, "%s {\n", selector)
		for _, d := range rule.Declarations {
			value, err := t.resolve(d.Value)
			if err != nil {
				return "", fmt.Errorf("rule %q: %w", selector, err)
			}
			fmt.Fprintf(&b, "  %s: %s;\n", d.Property, value)
		}
		b.WriteString("}\n")
	}
	return b.String(), nil
}

// resolve replaces each {name} reference with its custom property.
func (t Tokens) resolve(value string) (string, error) {
	var b strings.Builder
	rest := value
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated token reference in %q", value)
		}
		name := rest[open+1 : open+end]
		if !t.Has(name) {
			return "", fmt.Errorf("%w: %q", ErrMissingToken, name)
		}
		b.WriteString(rest[:open])
		b.WriteString("var(" + CustomProperty(name) + ")")
		rest = rest[open+end+1:]
	}
}
