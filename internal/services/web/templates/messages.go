package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Severity selects the alert style of a flash message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// severityError is accepted as an alias of SeverityDanger.
const severityError Severity = "error"

// Message is one single-use notification.
type Message struct {
	Text     string
	Severity Severity
}

// AlertClass maps a severity to its Bootstrap alert class. Unknown
// severities fail with ErrUnknownSeverity.
func AlertClass(severity Severity) (string, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(string(severity)))) {
	case SeverityInfo:
		return "alert-info", nil
	case SeveritySuccess:
		return "alert-success", nil
	case SeverityWarning:
		return "alert-warning", nil
	case SeverityDanger, severityError:
		return "alert-danger", nil
	default:
		return "", &RenderError{Kind: KindUnknownSeverity, Detail: string(severity)}
	}
}

// Messages renders one dismissible alert per message, in order. Empty input
// renders nothing. All severities are checked before anything is written.
func Messages(messages []Message, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(messages) == 0 {
			return nil
		}
		alertClasses := make([]string, len(messages))
		for i, msg := range messages {
			class, err := AlertClass(msg.Severity)
			if err != nil {
				return err
			}
			alertClasses[i] = class
		}
		closeLabel := T(loc, "alert.close")
		m := newMarkup(w)
		for i, msg := range messages {
			m.raw(`<div`)
			m.attr("class", classes("alert", alertClasses[i], "alert-dismissible fade show"))
			m.raw(` role="alert">`)
			m.text(msg.Text)
			m.raw(`<button type="button" class="btn-close" data-bs-dismiss="alert"`)
			m.attr("aria-label", closeLabel)
			m.raw(`></button></div>`)
		}
		return m.err
	})
}
