// Package pagerender assembles the per-request page context and writes
// full pages through the shared layout.
package pagerender

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/i18n"
	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
	"golang.org/x/text/message"
)

// ViewerFunc resolves the signed-in account for a request.
type ViewerFunc func(*http.Request) templates.Viewer

// Options configures a Renderer.
type Options struct {
	Shell  *templates.Shell
	CSRF   *csrf.Protector
	Flash  flash.Store
	Viewer ViewerFunc
	Policy requestmeta.SchemePolicy
}

// Renderer writes pages. It is safe for concurrent use.
type Renderer struct {
	shell  *templates.Shell
	csrf   *csrf.Protector
	flash  flash.Store
	viewer ViewerFunc
	policy requestmeta.SchemePolicy
}

// Page is one page response.
type Page struct {
	Page     templates.Page
	Active   routepath.LinkID
	Status   int
	Form     *templates.Form
	Messages []templates.Message
	Values   map[string]string
}

// New builds a Renderer.
func New(opts Options) (*Renderer, error) {
	if opts.Shell == nil {
		return nil, errors.New("page shell is required")
	}
	if opts.CSRF == nil {
		return nil, errors.New("csrf protector is required")
	}
	viewer := opts.Viewer
	if viewer == nil {
		viewer = func(*http.Request) templates.Viewer { return templates.Viewer{} }
	}
	return &Renderer{
		shell:  opts.Shell,
		csrf:   opts.CSRF,
		flash:  opts.Flash,
		viewer: viewer,
		policy: opts.Policy,
	}, nil
}

// Printer returns the message printer for the request language.
func (r *Renderer) Printer(req *http.Request) *message.Printer {
	printer, _ := i18n.ResolvePrinter(req)
	return printer
}

// Viewer returns the signed-in account for req, or the anonymous viewer.
func (r *Renderer) Viewer(req *http.Request) templates.Viewer {
	return r.viewer(req)
}

// Write renders page. Pending flash notices are shown before page messages.
// A render failure is logged and answered with the generic error page.
func (r *Renderer) Write(w http.ResponseWriter, req *http.Request, page Page) {
	if w == nil {
		return
	}
	status := page.Status
	if status <= 0 {
		status = http.StatusOK
	}
	pc := r.baseContext(w, req)
	pc.Active = page.Active
	pc.Form = page.Form
	pc.Values = page.Values
	pc.Messages = append(r.flashMessages(w, req, pc.Loc), page.Messages...)

	var buf bytes.Buffer
	if err := r.shell.Render(httpx.RequestContext(req), &buf, page.Page, pc); err != nil {
		log.Printf("page render failed page=%s path=%s request_id=%s err=%v", pageName(page.Page), requestPath(req), httpx.RequestIDFrom(req), err)
		r.writeErrorPage(w, req, templates.PageContext{Loc: pc.Loc, Lang: pc.Lang, CSRFToken: pc.CSRFToken, Viewer: pc.Viewer}, http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, status, buf.Bytes())
}

// WriteError renders the generic error page with status.
func (r *Renderer) WriteError(w http.ResponseWriter, req *http.Request, status int) {
	if w == nil {
		return
	}
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	r.writeErrorPage(w, req, r.baseContext(w, req), status)
}

func (r *Renderer) writeErrorPage(w http.ResponseWriter, req *http.Request, pc templates.PageContext, status int) {
	var buf bytes.Buffer
	page := templates.ErrorPage{NotFound: status == http.StatusNotFound}
	if err := r.shell.Render(httpx.RequestContext(req), &buf, page, pc); err != nil {
		log.Printf("error page render failed path=%s request_id=%s err=%v", requestPath(req), httpx.RequestIDFrom(req), err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	_ = httpx.WriteHTML(w, status, buf.Bytes())
}

func (r *Renderer) baseContext(w http.ResponseWriter, req *http.Request) templates.PageContext {
	if tag, ok := i18n.FromQuery(req); ok {
		i18n.WriteCookie(w, tag, r.policy.IsHTTPS(req))
	}
	printer, lang := i18n.ResolvePrinter(req)
	return templates.PageContext{
		CSRFToken: r.csrf.Token(w, req),
		Viewer:    r.viewer(req),
		Lang:      lang,
		Loc:       printer,
	}
}

func (r *Renderer) flashMessages(w http.ResponseWriter, req *http.Request, loc templates.Localizer) []templates.Message {
	notices := r.flash.ReadAndClear(w, req)
	if len(notices) == 0 {
		return nil
	}
	out := make([]templates.Message, 0, len(notices))
	for _, notice := range notices {
		args := make([]any, len(notice.Args))
		for i, arg := range notice.Args {
			args[i] = arg
		}
		out = append(out, templates.Message{
			Text:     templates.T(loc, notice.Key, args...),
			Severity: templates.Severity(notice.Kind),
		})
	}
	return out
}

func pageName(page templates.Page) string {
	if page == nil {
		return "-"
	}
	return page.Name()
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
