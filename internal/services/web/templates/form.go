package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// FieldKind selects the input control rendered for a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
	KindNumber   FieldKind = "number"
	KindSelect   FieldKind = "select"
	KindTextarea FieldKind = "textarea"
	KindHidden   FieldKind = "hidden"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// FormField is one named input plus its current value and validation errors.
type FormField struct {
	Name         string
	Label        string
	Kind         FieldKind
	Value        string
	Placeholder  string
	HelpText     string
	Autocomplete string
	Required     bool
	Autofocus    bool
	Options      []Option
	Errors       []string
}

// HasErrors reports whether the field carries validation errors.
func (f FormField) HasErrors() bool {
	return len(f.Errors) > 0
}

// Form is an ordered set of fields plus errors not tied to one field.
type Form struct {
	Fields []FormField
	Errors []string
}

// HasErrors reports whether the form or any field carries errors.
func (f Form) HasErrors() bool {
	if len(f.Errors) > 0 {
		return true
	}
	for _, field := range f.Fields {
		if field.HasErrors() {
			return true
		}
	}
	return false
}

// FieldID derives the stable element id for a field name.
func FieldID(name string) string {
	return "id_" + strings.TrimSpace(name)
}

func fieldErrorID(name string, idx int) string {
	return FieldID(name) + "_error_" + strconv.Itoa(idx+1)
}

// FormFields renders non-field errors and then every field in the order
// given. Fields are neither reordered nor deduplicated.
func FormFields(form Form) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, field := range form.Fields {
			if strings.TrimSpace(field.Name) == "" {
				return missingContext("form field %d has no name", i)
			}
			if !knownKind(field.Kind) {
				return missingContext("form field %q has unknown kind %q", field.Name, field.Kind)
			}
		}
		m := newMarkup(w)
		if len(form.Errors) > 0 {
			m.raw(`<div class="alert alert-danger" role="alert"><ul class="mb-0">`)
			for _, msg := range form.Errors {
				m.raw(`<li>`)
				m.text(msg)
				m.raw(`</li>`)
			}
			m.raw(`</ul></div>`)
		}
		for _, field := range form.Fields {
			m.component(ctx, Field(field))
		}
		return m.err
	})
}

func knownKind(kind FieldKind) bool {
	switch kind {
	case "", KindText, KindEmail, KindPassword, KindNumber, KindSelect, KindTextarea, KindHidden:
		return true
	default:
		return false
	}
}

// Field renders label, control and error lines for one field.
func Field(field FormField) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		if field.Kind == KindHidden {
			writeInput(m, field, "hidden")
			writeFieldErrors(m, field)
			return m.err
		}
		m.raw(`<div class="mb-3"`)
		m.attr("data-field", field.Name)
		m.raw(`>`)
		m.raw(`<label`)
		m.attr("for", FieldID(field.Name))
		m.raw(` class="form-label">`)
		m.text(field.Label)
		m.raw(`</label>`)
		switch field.Kind {
		case KindSelect:
			writeSelect(m, field)
		case KindTextarea:
			writeTextarea(m, field)
		case "":
			writeInput(m, field, string(KindText))
		default:
			writeInput(m, field, string(field.Kind))
		}
		if help := strings.TrimSpace(field.HelpText); help != "" {
			m.raw(`<div class="form-text text-muted-sip"`)
			m.attr("id", FieldID(field.Name)+"_help")
			m.raw(`>`)
			m.text(help)
			m.raw(`</div>`)
		}
		writeFieldErrors(m, field)
		m.raw(`</div>`)
		return m.err
	})
}

func writeControlAttrs(m *markup, field FormField, baseClass string) {
	m.attr("name", field.Name)
	m.attr("id", FieldID(field.Name))
	class := baseClass
	if field.HasErrors() {
		class = classes(baseClass, "is-invalid")
	}
	m.attr("class", class)
	m.flag("required", field.Required)
	m.flag("autofocus", field.Autofocus)
	if field.HasErrors() {
		m.raw(` aria-invalid="true"`)
	}
	described := make([]string, 0, len(field.Errors)+1)
	if strings.TrimSpace(field.HelpText) != "" {
		described = append(described, FieldID(field.Name)+"_help")
	}
	for i := range field.Errors {
		described = append(described, fieldErrorID(field.Name, i))
	}
	if len(described) > 0 {
		m.attr("aria-describedby", strings.Join(described, " "))
	}
}

func writeInput(m *markup, field FormField, inputType string) {
	m.raw(`<input`)
	m.attr("type", inputType)
	if inputType == string(KindHidden) {
		m.attr("name", field.Name)
		m.attr("id", FieldID(field.Name))
		m.attr("value", field.Value)
		m.raw(`>`)
		return
	}
	writeControlAttrs(m, field, "form-control")
	// Password values are never echoed back into the page.
	if inputType != string(KindPassword) && field.Value != "" {
		m.attr("value", field.Value)
	}
	if field.Placeholder != "" {
		m.attr("placeholder", field.Placeholder)
	}
	if field.Autocomplete != "" {
		m.attr("autocomplete", field.Autocomplete)
	}
	m.raw(`>`)
}

func writeSelect(m *markup, field FormField) {
	m.raw(`<select`)
	writeControlAttrs(m, field, "form-select")
	m.raw(`>`)
	for _, option := range field.Options {
		m.raw(`<option`)
		m.attr("value", option.Value)
		m.flag("selected", option.Value == field.Value)
		m.raw(`>`)
		m.text(option.Label)
		m.raw(`</option>`)
	}
	m.raw(`</select>`)
}

func writeTextarea(m *markup, field FormField) {
	m.raw(`<textarea`)
	writeControlAttrs(m, field, "form-control")
	if field.Placeholder != "" {
		m.attr("placeholder", field.Placeholder)
	}
	m.raw(` rows="4">`)
	m.text(field.Value)
	m.raw(`</textarea>`)
}

func writeFieldErrors(m *markup, field FormField) {
	for i, msg := range field.Errors {
		m.raw(`<div class="invalid-feedback d-block"`)
		m.attr("id", fieldErrorID(field.Name, i))
		m.raw(`>`)
		m.text(msg)
		m.raw(`</div>`)
	}
}
