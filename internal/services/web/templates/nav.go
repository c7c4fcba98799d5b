package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/sip/internal/platform/branding"
	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

// NavLink is one navigation entry. LabelKey is a localization key.
type NavLink struct {
	ID       routepath.LinkID
	LabelKey string
	Icon     string
}

// Navigation is the ordered link set shared by every page. Primary links
// render for everyone; Guest links only for anonymous viewers; Member links
// only for signed-in viewers and submit as POST forms.
type Navigation struct {
	Brand   routepath.LinkID
	Primary []NavLink
	Guest   []NavLink
	Member  []NavLink
}

// DefaultNavigation returns the SIP navigation bar.
func DefaultNavigation() Navigation {
	return Navigation{
		Brand: routepath.LinkPractice,
		Primary: []NavLink{
			{ID: routepath.LinkPractice, LabelKey: "nav.practice", Icon: "bi-mic"},
			{ID: routepath.LinkQuestionSets, LabelKey: "nav.question_sets", Icon: "bi-collection"},
			{ID: routepath.LinkHistory, LabelKey: "nav.history", Icon: "bi-clock-history"},
		},
		Guest: []NavLink{
			{ID: routepath.LinkLogin, LabelKey: "nav.login", Icon: "bi-box-arrow-in-right"},
			{ID: routepath.LinkRegister, LabelKey: "nav.register", Icon: "bi-person-plus"},
		},
		Member: []NavLink{
			{ID: routepath.LinkLogout, LabelKey: "nav.logout", Icon: "bi-box-arrow-right"},
		},
	}
}

// validate checks that link ids are unique and mapped to a path.
func (n Navigation) validate(routes routepath.Routes) error {
	seen := map[routepath.LinkID]bool{}
	groups := [][]NavLink{n.Primary, n.Guest, n.Member}
	for _, group := range groups {
		for _, link := range group {
			if link.ID == routepath.LinkNone {
				return fmt.Errorf("navigation link id is required")
			}
			if seen[link.ID] {
				return fmt.Errorf("navigation link %q is listed twice", link.ID)
			}
			seen[link.ID] = true
			if _, ok := routes.Path(link.ID); !ok {
				return fmt.Errorf("navigation link %q has no route", link.ID)
			}
		}
	}
	if n.Brand != routepath.LinkNone {
		if _, ok := routes.Path(n.Brand); !ok {
			return fmt.Errorf("navigation brand %q has no route", n.Brand)
		}
	}
	return nil
}

// navbar renders the navigation bar; at most the link matching pc.Active is
// marked active. On a guest page only that page's guest link is shown.
func navbar(nav Navigation, appName string, pc PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if appName == "" {
			appName = branding.AppName
		}
		brandHref := "/"
		if nav.Brand != routepath.LinkNone {
			path, err := pc.Path(nav.Brand)
			if err != nil {
				return err
			}
			brandHref = path
		}

		m := newMarkup(w)
		m.raw(`<nav class="navbar navbar-expand-lg navbar-sip"><div class="container">`)
		m.raw(`<a class="navbar-brand"`)
		m.attr("href", brandHref)
		m.raw(`>`)
		m.icon("bi-chat-square-quote")
		m.raw(` `)
		m.text(appName)
		m.raw(`</a>`)
		m.raw(`<button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#sipNav" aria-controls="sipNav" aria-expanded="false"`)
		m.attr("aria-label", T(pc.Loc, "nav.toggle"))
		m.raw(`><span class="navbar-toggler-icon"></span></button>`)
		m.raw(`<div class="collapse navbar-collapse" id="sipNav">`)

		m.raw(`<ul class="navbar-nav me-auto">`)
		for _, link := range nav.Primary {
			if err := writeNavLink(m, link, pc); err != nil {
				return err
			}
		}
		m.raw(`</ul>`)

		m.raw(`<ul class="navbar-nav">`)
		if pc.Viewer.SignedIn() {
			m.raw(`<li class="nav-item"><span class="navbar-text me-2">`)
			m.text(T(pc.Loc, "nav.signed_in_as"))
			m.raw(` <strong>`)
			m.text(pc.Viewer.Username)
			m.raw(`</strong></span></li>`)
			for _, link := range nav.Member {
				if err := writeNavForm(m, link, pc); err != nil {
					return err
				}
			}
		} else {
			onGuestPage := containsLink(nav.Guest, pc.Active)
			for _, link := range nav.Guest {
				// Guest pages cross-link to each other in their body.
				if onGuestPage && link.ID != pc.Active {
					continue
				}
				if err := writeNavLink(m, link, pc); err != nil {
					return err
				}
			}
		}
		m.raw(`</ul>`)

		m.raw(`</div></div></nav>`)
		return m.err
	})
}

func containsLink(links []NavLink, id routepath.LinkID) bool {
	if id == routepath.LinkNone {
		return false
	}
	for _, link := range links {
		if link.ID == id {
			return true
		}
	}
	return false
}

func writeNavLink(m *markup, link NavLink, pc PageContext) error {
	path, err := pc.Path(link.ID)
	if err != nil {
		return err
	}
	active := pc.Active != routepath.LinkNone && link.ID == pc.Active
	m.raw(`<li class="nav-item"><a`)
	if active {
		m.raw(` class="nav-link active" aria-current="page"`)
	} else {
		m.raw(` class="nav-link"`)
	}
	m.attr("href", path)
	m.attr("data-nav", string(link.ID))
	m.raw(`>`)
	m.icon(link.Icon)
	m.raw(` `)
	m.text(T(pc.Loc, link.LabelKey))
	m.raw(`</a></li>`)
	return nil
}

func writeNavForm(m *markup, link NavLink, pc PageContext) error {
	path, err := pc.Path(link.ID)
	if err != nil {
		return err
	}
	if pc.CSRFToken == "" {
		return missingContext("navigation form %q requires a csrf token", link.ID)
	}
	active := pc.Active != routepath.LinkNone && link.ID == pc.Active
	m.raw(`<li class="nav-item"><form method="post" class="d-inline"`)
	m.attr("action", path)
	m.raw(`>`)
	writeCSRFInput(m, pc.CSRFToken)
	m.raw(`<button type="submit"`)
	if active {
		m.raw(` class="nav-link btn btn-link active" aria-current="page"`)
	} else {
		m.raw(` class="nav-link btn btn-link"`)
	}
	m.attr("data-nav", string(link.ID))
	m.raw(`>`)
	m.icon(link.Icon)
	m.raw(` `)
	m.text(T(pc.Loc, link.LabelKey))
	m.raw(`</button></form></li>`)
	return nil
}

func writeCSRFInput(m *markup, token string) {
	m.raw(`<input type="hidden"`)
	m.attr("name", csrf.FieldName)
	m.attr("value", token)
	m.raw(`>`)
}
