package csrf

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
)

func newProtector(t *testing.T) *Protector {
	t.Helper()
	p, err := New("test-secret", requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func issue(t *testing.T, p *Protector) (string, *http.Cookie) {
	t.Helper()
	rr := httptest.NewRecorder()
	token := p.Token(rr, httptest.NewRequest(http.MethodGet, "/login/", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %+v, want client cookie", cookies)
	}
	return token, cookies[0]
}

func postForm(token string, cookie *http.Cookie) *http.Request {
	form := url.Values{FieldName: {token}}
	req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestNewRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := New("  ", requestmeta.SchemePolicy{}); err == nil {
		t.Fatal("expected error for blank secret")
	}
}

func TestTokenVerifies(t *testing.T) {
	t.Parallel()

	p := newProtector(t)
	token, cookie := issue(t, p)
	if err := p.Verify(postForm(token, cookie)); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestTokenReusesExistingClientCookie(t *testing.T) {
	t.Parallel()

	p := newProtector(t)
	_, cookie := issue(t, p)

	req := httptest.NewRequest(http.MethodGet, "/register/", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	token := p.Token(rr, req)
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no new cookie")
	}
	if err := p.Verify(postForm(token, cookie)); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestVerifyAcceptsHeaderToken(t *testing.T) {
	t.Parallel()

	p := newProtector(t)
	token, cookie := issue(t, p)
	req := httptest.NewRequest(http.MethodPost, "/logout/", nil)
	req.AddCookie(cookie)
	req.Header.Set(HeaderName, token)
	if err := p.Verify(req); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	p := newProtector(t)
	token, cookie := issue(t, p)
	_, otherCookie := issue(t, p)
	other, err := New("other-secret", requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		p    *Protector
		req  *http.Request
	}{
		{name: "nil request", p: p, req: nil},
		{name: "missing token", p: p, req: postForm("", cookie)},
		{name: "missing cookie", p: p, req: postForm(token, nil)},
		{name: "other browser", p: p, req: postForm(token, otherCookie)},
		{name: "forged token", p: p, req: postForm("forged", cookie)},
		{name: "other secret", p: other, req: postForm(token, cookie)},
		{name: "malformed cookie", p: p, req: postForm(token, &http.Cookie{Name: CookieName, Value: "abc"})},
		{name: "cross origin", p: p, req: func() *http.Request {
			req := postForm(token, cookie)
			req.Header.Set("Origin", "https://evil.test")
			return req
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.p.Verify(tc.req)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
			}
			if got := apperrors.HTTPStatus(err); got != http.StatusForbidden {
				t.Fatalf("HTTPStatus() = %d, want 403", got)
			}
		})
	}
}
