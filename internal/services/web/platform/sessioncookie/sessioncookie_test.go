package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
)

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Jar{}.Write(rr, httptest.NewRequest(http.MethodPost, "/login/", nil), " sess-1 ")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if !cookies[0].HttpOnly || cookies[0].SameSite != http.SameSiteLaxMode || cookies[0].Path != "/" {
		t.Fatalf("cookie attributes = %+v", cookies[0])
	}
	req := httptest.NewRequest(http.MethodGet, "/practice/", nil)
	req.AddCookie(cookies[0])
	got, ok := Read(req)
	if !ok || got != "sess-1" {
		t.Fatalf("Read() = %q, %v", got, ok)
	}
}

func TestWriteIgnoresBlankID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Jar{}.Write(rr, httptest.NewRequest(http.MethodPost, "/login/", nil), "  ")
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatal("expected no cookie")
	}
}

func TestReadMissingOrBlank(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatal("Read(nil) ok = true")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("Read() without cookie ok = true")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: " "})
	if _, ok := Read(req); ok {
		t.Fatal("Read() blank cookie ok = true")
	}
}

func TestClearExpiresSecureCookieBehindTLS(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	Jar{Policy: requestmeta.SchemePolicy{TrustForwardedProto: true}}.Clear(rr, req)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 || !cookies[0].Secure {
		t.Fatalf("cookie = %+v, want expired secure cookie", cookies)
	}
}
