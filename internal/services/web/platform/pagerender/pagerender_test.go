package pagerender

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/sip/internal/services/web/i18n"
	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

func newRenderer(t *testing.T, viewer ViewerFunc) *Renderer {
	t.Helper()
	shell, err := templates.NewShell()
	if err != nil {
		t.Fatalf("NewShell() error = %v", err)
	}
	protector, err := csrf.New("secret", requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("csrf.New() error = %v", err)
	}
	r, err := New(Options{Shell: shell, CSRF: protector, Viewer: viewer})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNewRequiresShellAndCSRF(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error without shell")
	}
	shell, err := templates.NewShell()
	if err != nil {
		t.Fatalf("NewShell() error = %v", err)
	}
	if _, err := New(Options{Shell: shell}); err == nil {
		t.Fatal("expected error without csrf")
	}
}

func TestWriteRendersLoginPageWithCSRF(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, routepath.Login, nil)
	r.Write(rr, req, Page{
		Page:   templates.LoginPage{},
		Active: routepath.LinkLogin,
		Form:   &templates.Form{Fields: []templates.FormField{{Name: "username", Label: "Username"}}},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `name="`+csrf.FieldName+`"`) {
		t.Fatalf("expected csrf input")
	}
	var sawCSRFCookie bool
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == csrf.CookieName {
			sawCSRFCookie = true
		}
	}
	if !sawCSRFCookie {
		t.Fatalf("expected csrf client cookie")
	}
}

func TestWriteShowsFlashBeforePageMessages(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, nil)
	flashRR := httptest.NewRecorder()
	flash.Store{}.Add(flashRR, httptest.NewRequest(http.MethodPost, routepath.Register, nil), flash.Success("flash.registered", "ada"))

	req := httptest.NewRequest(http.MethodGet, routepath.Practice, nil)
	for _, cookie := range flashRR.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	r.Write(rr, req, Page{
		Page:     templates.PracticeIndexPage{},
		Active:   routepath.LinkPractice,
		Messages: []templates.Message{{Text: "Second", Severity: templates.SeverityInfo}},
	})

	body := rr.Body.String()
	first := strings.Index(body, "Welcome, ada! Your account has been created.")
	second := strings.Index(body, "Second")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected flash before page message (first=%d second=%d)", first, second)
	}
	if !strings.Contains(body, "alert-success") {
		t.Fatalf("expected success alert")
	}
	var cleared bool
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected flash cookie to be cleared")
	}
}

func TestWriteRenderFailureServesErrorPage(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var logs bytes.Buffer
	log.SetOutput(&logs)

	r := newRenderer(t, nil)
	rr := httptest.NewRecorder()
	r.Write(rr, httptest.NewRequest(http.MethodGet, routepath.Login, nil), Page{Page: templates.LoginPage{}})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Something went wrong") {
		t.Fatalf("expected generic error page")
	}
	if !strings.Contains(logs.String(), "page render failed page=login") {
		t.Fatalf("expected render failure log, got %q", logs.String())
	}
}

func TestWriteErrorNotFound(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, func(*http.Request) templates.Viewer { return templates.Viewer{Username: "ada"} })
	rr := httptest.NewRecorder()
	r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, "ada") {
		t.Fatalf("expected not found page for signed-in viewer")
	}
}

func TestWriteHonorsLanguageQuery(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, nil)
	rr := httptest.NewRecorder()
	r.Write(rr, httptest.NewRequest(http.MethodGet, routepath.History+"?lang=pt-BR", nil), Page{
		Page: templates.HistoryPage{},
	})
	body := rr.Body.String()
	if !strings.Contains(body, `lang="pt-BR"`) || !strings.Contains(body, "Histórico") {
		t.Fatalf("expected Portuguese page")
	}
	var persisted bool
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == i18n.LangCookieName && cookie.Value == "pt-BR" {
			persisted = true
		}
	}
	if !persisted {
		t.Fatalf("expected language cookie")
	}
}
