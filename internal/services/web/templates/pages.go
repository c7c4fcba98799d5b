package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/theme"
)

// authCard describes one authentication page. Everything here is static per
// page type.
type authCard struct {
	titleKey     string
	icon         string
	action       routepath.LinkID
	submitKey    string
	cancelKey    string
	cancelLink   routepath.LinkID
	promptKey    string
	crossLinkKey string
	crossLink    routepath.LinkID
}

func (c authCard) hasCancel() bool {
	return c.cancelLink != routepath.LinkNone
}

// LoginPage renders the sign-in form.
type LoginPage struct{}

// Name identifies the page in logs and traces.
func (LoginPage) Name() string { return "login" }

// Blocks supplies the title and content blocks.
func (LoginPage) Blocks(pc PageContext) ([]Block, error) {
	return authCard{
		titleKey:     "login.title",
		icon:         "bi-box-arrow-in-right",
		action:       routepath.LinkLogin,
		submitKey:    "login.submit",
		promptKey:    "login.no_account",
		crossLinkKey: "login.register_link",
		crossLink:    routepath.LinkRegister,
	}.blocks(pc)
}

// RegisterPage renders the account creation form.
type RegisterPage struct{}

// Name identifies the page in logs and traces.
func (RegisterPage) Name() string { return "register" }

// Blocks supplies the title and content blocks.
func (RegisterPage) Blocks(pc PageContext) ([]Block, error) {
	return authCard{
		titleKey:     "register.title",
		icon:         "bi-person-plus",
		action:       routepath.LinkRegister,
		submitKey:    "register.submit",
		cancelKey:    "register.cancel",
		cancelLink:   routepath.LinkPractice,
		promptKey:    "register.have_account",
		crossLinkKey: "register.login_link",
		crossLink:    routepath.LinkLogin,
	}.blocks(pc)
}

func (c authCard) blocks(pc PageContext) ([]Block, error) {
	if pc.Form == nil {
		return nil, missingContext("%s page requires a form", c.titleKey)
	}
	if pc.CSRFToken == "" {
		return nil, missingContext("%s page requires a csrf token", c.titleKey)
	}
	action, err := pc.Path(c.action)
	if err != nil {
		return nil, err
	}
	crossHref, err := pc.Path(c.crossLink)
	if err != nil {
		return nil, err
	}
	cancelHref := ""
	if c.hasCancel() {
		if cancelHref, err = pc.Path(c.cancelLink); err != nil {
			return nil, err
		}
	}
	form := *pc.Form

	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="row justify-content-center"><div class="col-md-7 col-lg-5">`)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		m.raw(`<h1 class="`, theme.ClassPageTitle, ` h3">`)
		m.icon(c.icon)
		m.text(T(pc.Loc, c.titleKey))
		m.raw(`</h1>`)

		m.raw(`<form method="post" novalidate`)
		m.attr("action", action)
		m.raw(`>`)
		writeCSRFInput(m, pc.CSRFToken)
		m.component(ctx, FormFields(form))
		m.raw(`<div class="d-grid gap-2 mt-4">`)
		m.raw(`<button type="submit" class="btn `, theme.ClassButtonPrimary, `">`)
		m.text(T(pc.Loc, c.submitKey))
		m.raw(`</button>`)
		if c.hasCancel() {
			m.raw(`<a class="btn btn-outline-secondary" data-action="cancel"`)
			m.attr("href", cancelHref)
			m.raw(`>`)
			m.text(T(pc.Loc, c.cancelKey))
			m.raw(`</a>`)
		}
		m.raw(`</div></form>`)

		m.raw(`<p class="`, theme.ClassTextMuted, ` text-center mt-4 mb-0">`)
		m.text(T(pc.Loc, c.promptKey))
		m.raw(` <a`)
		m.attr("href", crossHref)
		m.attr("data-cross-link", string(c.crossLink))
		m.raw(`>`)
		m.text(T(pc.Loc, c.crossLinkKey))
		m.raw(`</a></p>`)

		m.raw(`</div></div></div>`)
		return m.err
	})

	return []Block{
		{Name: BlockTitle, Component: Text(T(pc.Loc, c.titleKey))},
		{Name: BlockContent, Component: content},
	}, nil
}

// ErrorPage renders the generic failure page.
type ErrorPage struct {
	NotFound bool
}

// Name identifies the page in logs and traces.
func (ErrorPage) Name() string { return "error" }

// Blocks supplies the title and content blocks.
func (p ErrorPage) Blocks(pc PageContext) ([]Block, error) {
	titleKey, bodyKey := "error.title", "error.body"
	if p.NotFound {
		titleKey, bodyKey = "error.not_found_title", "error.not_found_body"
	}
	home, err := pc.Path(routepath.LinkPractice)
	if err != nil {
		return nil, err
	}
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, ` text-center">`)
		m.raw(`<h1 class="`, theme.ClassPageTitle, ` h3">`)
		m.icon("bi-exclamation-triangle")
		m.text(T(pc.Loc, titleKey))
		m.raw(`</h1><p class="`, theme.ClassTextMuted, `">`)
		m.text(T(pc.Loc, bodyKey))
		m.raw(`</p><a class="btn `, theme.ClassButtonPrimary, `"`)
		m.attr("href", home)
		m.raw(`>`)
		m.text(T(pc.Loc, "error.back"))
		m.raw(`</a></div>`)
		return m.err
	})
	return []Block{
		{Name: BlockTitle, Component: Text(T(pc.Loc, titleKey))},
		{Name: BlockContent, Component: content},
	}, nil
}
