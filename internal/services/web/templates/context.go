package templates

import (
	"strings"

	"github.com/louisbranch/sip/internal/services/web/routepath"
)

// Viewer describes the signed-in account for navigation chrome.
type Viewer struct {
	Username string
}

// SignedIn reports whether the viewer represents an authenticated account.
func (v Viewer) SignedIn() bool {
	return strings.TrimSpace(v.Username) != ""
}

// PageContext is the request-scoped input to one render call.
type PageContext struct {
	// Active selects the highlighted navigation link; LinkNone highlights none.
	Active routepath.LinkID
	// Messages are rendered once, in order, above the content region.
	Messages []Message
	// Form is required by form-backed pages.
	Form *Form
	// CSRFToken is emitted in every POST form; opaque to this package.
	CSRFToken string
	Viewer    Viewer
	Lang      string
	Loc       Localizer
	// Values carries page-specific values.
	Values map[string]string

	routes routepath.Routes
}

// Path resolves a link id against the routes the shell injected.
func (pc PageContext) Path(id routepath.LinkID) (string, error) {
	path, ok := pc.routes.Path(id)
	if !ok {
		return "", missingContext("no path for link %q", id)
	}
	return path, nil
}

// Value returns a page-specific value.
func (pc PageContext) Value(key string) string {
	if pc.Values == nil {
		return ""
	}
	return pc.Values[key]
}

func (pc PageContext) lang() string {
	if lang := strings.TrimSpace(pc.Lang); lang != "" {
		return lang
	}
	return "en"
}
