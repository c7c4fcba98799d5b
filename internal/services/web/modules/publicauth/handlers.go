package publicauth

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

type handlers struct {
	service  service
	pages    *pagerender.Renderer
	csrf     *csrf.Protector
	flash    flash.Store
	sessions sessioncookie.Jar
}

func (h handlers) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderRegister(w, r, registerInput{}, problems{}, http.StatusOK, nil)
		return
	}
	if !h.verified(w, r, routepath.Register) {
		return
	}
	in := registerInput{
		Username:  strings.TrimSpace(r.PostFormValue(fieldUsername)),
		Email:     strings.TrimSpace(r.PostFormValue(fieldEmail)),
		Password1: r.PostFormValue(fieldPassword1),
		Password2: r.PostFormValue(fieldPassword2),
	}
	if p := validateRegistration(in); !p.empty() {
		h.renderRegister(w, r, in, p, http.StatusOK, nil)
		return
	}
	sessionID, err := h.service.register(httpx.RequestContext(r), in)
	if err != nil {
		if p, ok := gatewayProblems(err, "register.failed", registerFields); ok {
			h.renderRegister(w, r, in, p, http.StatusOK, nil)
			return
		}
		h.logGatewayFailure(r, "register", err)
		h.renderRegister(w, r, in, problems{}, apperrors.HTTPStatus(err), h.failureMessages(r, err))
		return
	}
	h.sessions.Write(w, r, sessionID)
	h.flash.Add(w, r, flash.Success("flash.registered", in.Username))
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		in := loginInput{Next: routepath.SafeNext(r.URL.Query().Get(routepath.NextQueryKey))}
		h.renderLogin(w, r, in, problems{}, http.StatusOK, nil)
		return
	}
	if !h.verified(w, r, routepath.Login) {
		return
	}
	in := loginInput{
		Username: strings.TrimSpace(r.PostFormValue(fieldUsername)),
		Password: r.PostFormValue(fieldPassword),
		Next:     routepath.SafeNext(r.PostFormValue(fieldNext)),
	}
	if p := validateLogin(in); !p.empty() {
		h.renderLogin(w, r, in, p, http.StatusOK, nil)
		return
	}
	sessionID, err := h.service.login(httpx.RequestContext(r), in)
	if err != nil {
		if p, ok := gatewayProblems(err, "login.invalid", loginFields); ok {
			h.renderLogin(w, r, in, p, http.StatusOK, nil)
			return
		}
		h.logGatewayFailure(r, "login", err)
		h.renderLogin(w, r, in, problems{}, apperrors.HTTPStatus(err), h.failureMessages(r, err))
		return
	}
	h.sessions.Write(w, r, sessionID)
	h.flash.Add(w, r, flash.Success("flash.logged_in", in.Username))
	next := in.Next
	if next == "" {
		next = routepath.Practice
	}
	httpx.WriteRedirect(w, r, next)
}

func (h handlers) logout(w http.ResponseWriter, r *http.Request) {
	if !h.verified(w, r, routepath.Root) {
		return
	}
	if sessionID, ok := sessioncookie.Read(r); ok {
		if err := h.service.logout(httpx.RequestContext(r), sessionID); err != nil {
			h.logGatewayFailure(r, "logout", err)
		}
	}
	h.sessions.Clear(w, r)
	h.flash.Add(w, r, flash.Info("flash.logged_out"))
	httpx.WriteRedirect(w, r, routepath.Root)
}

// verified checks the form token; on failure it queues a notice and
// redirects to retry.
func (h handlers) verified(w http.ResponseWriter, r *http.Request, retry string) bool {
	if err := h.csrf.Verify(r); err != nil {
		log.Printf("csrf rejected method=%s path=%s request_id=%s", r.Method, r.URL.Path, httpx.RequestIDFrom(r))
		h.flash.Add(w, r, flash.Danger(apperrors.LocalizationKey(err)))
		httpx.WriteRedirect(w, r, retry)
		return false
	}
	return true
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, in registerInput, p problems, status int, messages []templates.Message) {
	h.pages.Write(w, r, pagerender.Page{
		Page:     templates.RegisterPage{},
		Active:   routepath.LinkRegister,
		Status:   status,
		Form:     registerForm(h.pages.Printer(r), in, p),
		Messages: messages,
	})
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, in loginInput, p problems, status int, messages []templates.Message) {
	h.pages.Write(w, r, pagerender.Page{
		Page:     templates.LoginPage{},
		Active:   routepath.LinkLogin,
		Status:   status,
		Form:     loginForm(h.pages.Printer(r), in, p),
		Messages: messages,
	})
}

func (h handlers) failureMessages(r *http.Request, err error) []templates.Message {
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = "flash.auth_unavailable"
	}
	return []templates.Message{{
		Text:     templates.T(h.pages.Printer(r), key),
		Severity: templates.SeverityDanger,
	}}
}

func (h handlers) logGatewayFailure(r *http.Request, op string, err error) {
	log.Printf("auth gateway failed op=%s path=%s request_id=%s err=%v", op, r.URL.Path, httpx.RequestIDFrom(r), err)
}
