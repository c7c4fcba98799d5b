package publicauth

import (
	"github.com/louisbranch/sip/internal/services/web/templates"
)

func translate(loc templates.Localizer, list []problem) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, templates.T(loc, item.key, item.args...))
	}
	return out
}

func registerForm(loc templates.Localizer, in registerInput, p problems) *templates.Form {
	return &templates.Form{
		Errors: translate(loc, p.form),
		Fields: []templates.FormField{
			{
				Name:         fieldUsername,
				Label:        templates.T(loc, "field.username"),
				Kind:         templates.KindText,
				Value:        in.Username,
				Autocomplete: "username",
				Required:     true,
				Autofocus:    true,
				Errors:       translate(loc, p.fields[fieldUsername]),
			},
			{
				Name:         fieldEmail,
				Label:        templates.T(loc, "field.email"),
				Kind:         templates.KindEmail,
				Value:        in.Email,
				Autocomplete: "email",
				Required:     true,
				Errors:       translate(loc, p.fields[fieldEmail]),
			},
			{
				Name:         fieldPassword1,
				Label:        templates.T(loc, "field.password"),
				Kind:         templates.KindPassword,
				HelpText:     templates.T(loc, "register.password_help", minPasswordLength),
				Autocomplete: "new-password",
				Required:     true,
				Errors:       translate(loc, p.fields[fieldPassword1]),
			},
			{
				Name:         fieldPassword2,
				Label:        templates.T(loc, "field.password_confirm"),
				Kind:         templates.KindPassword,
				Autocomplete: "new-password",
				Required:     true,
				Errors:       translate(loc, p.fields[fieldPassword2]),
			},
		},
	}
}

func loginForm(loc templates.Localizer, in loginInput, p problems) *templates.Form {
	form := &templates.Form{
		Errors: translate(loc, p.form),
		Fields: []templates.FormField{
			{
				Name:         fieldUsername,
				Label:        templates.T(loc, "field.username"),
				Kind:         templates.KindText,
				Value:        in.Username,
				Autocomplete: "username",
				Required:     true,
				Autofocus:    true,
				Errors:       translate(loc, p.fields[fieldUsername]),
			},
			{
				Name:         fieldPassword,
				Label:        templates.T(loc, "field.password"),
				Kind:         templates.KindPassword,
				Autocomplete: "current-password",
				Required:     true,
				Errors:       translate(loc, p.fields[fieldPassword]),
			},
		},
	}
	if in.Next != "" {
		form.Fields = append(form.Fields, templates.FormField{Name: fieldNext, Kind: templates.KindHidden, Value: in.Next})
	}
	return form
}
