package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
)

func roundTrip(t *testing.T, writeRR *httptest.ResponseRecorder, path string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range writeRR.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestAddAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	var store Store
	writeRR := httptest.NewRecorder()
	store.Add(writeRR, httptest.NewRequest(http.MethodPost, "/register/", nil),
		Success("flash.registered", "ada"),
		Info("flash.logged_out"),
	)

	req := roundTrip(t, writeRR, "/practice/")
	readRR := httptest.NewRecorder()
	notices := store.ReadAndClear(readRR, req)
	if len(notices) != 2 {
		t.Fatalf("notices = %d, want 2", len(notices))
	}
	if notices[0].Kind != KindSuccess || notices[0].Key != "flash.registered" || len(notices[0].Args) != 1 || notices[0].Args[0] != "ada" {
		t.Fatalf("first notice = %+v", notices[0])
	}
	if notices[1].Kind != KindInfo || notices[1].Key != "flash.logged_out" {
		t.Fatalf("second notice = %+v", notices[1])
	}
	cleared := readRR.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cleared)
	}
}

func TestAddAppendsToPendingNotices(t *testing.T) {
	t.Parallel()

	var store Store
	first := httptest.NewRecorder()
	store.Add(first, httptest.NewRequest(http.MethodPost, "/login/", nil), Warning("a"))

	second := httptest.NewRecorder()
	store.Add(second, roundTrip(t, first, "/login/"), Danger("b"))

	notices := store.ReadAndClear(httptest.NewRecorder(), roundTrip(t, second, "/"))
	if len(notices) != 2 || notices[0].Key != "a" || notices[1].Key != "b" {
		t.Fatalf("notices = %+v, want a then b", notices)
	}
}

func TestAddKeepsNewestNotices(t *testing.T) {
	t.Parallel()

	var store Store
	rr := httptest.NewRecorder()
	notices := make([]Notice, 0, maxNotices+3)
	for i := 0; i < maxNotices+3; i++ {
		notices = append(notices, Info(string(rune('a'+i))))
	}
	store.Add(rr, httptest.NewRequest(http.MethodGet, "/", nil), notices...)

	got := store.ReadAndClear(httptest.NewRecorder(), roundTrip(t, rr, "/"))
	if len(got) != maxNotices {
		t.Fatalf("notices = %d, want %d", len(got), maxNotices)
	}
	if got[0].Key != "d" {
		t.Fatalf("oldest kept = %q, want d", got[0].Key)
	}
}

func TestAddNormalizesAndDropsInvalid(t *testing.T) {
	t.Parallel()

	var store Store
	rr := httptest.NewRecorder()
	store.Add(rr, httptest.NewRequest(http.MethodGet, "/", nil),
		Notice{Kind: " ERROR ", Key: " flash.auth_unavailable "},
		Notice{Kind: "critical", Key: "x"},
		Notice{Kind: KindInfo, Key: " "},
	)
	got := store.ReadAndClear(httptest.NewRecorder(), roundTrip(t, rr, "/"))
	if len(got) != 1 {
		t.Fatalf("notices = %+v, want one", got)
	}
	if got[0].Kind != KindDanger || got[0].Key != "flash.auth_unavailable" {
		t.Fatalf("notice = %+v", got[0])
	}
}

func TestAddWithNothingValidWritesNoCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Store{}.Add(rr, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: "nope", Key: "k"})
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no cookie")
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/practice/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	rr := httptest.NewRecorder()

	if got := (Store{}).ReadAndClear(rr, req); len(got) != 0 {
		t.Fatalf("notices = %+v, want none", got)
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestReadAndClearWithoutCookieWritesNothing(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if got := (Store{}).ReadAndClear(rr, httptest.NewRequest(http.MethodGet, "/", nil)); got != nil {
		t.Fatalf("notices = %+v, want nil", got)
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no Set-Cookie header")
	}
}

func TestSecureCookieFollowsPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/login/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Store{Policy: requestmeta.SchemePolicy{TrustForwardedProto: true}}.Add(rr, req, Success("flash.logged_in", "ada"))

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure || !cookies[0].HttpOnly {
		t.Fatalf("cookie = %+v, want secure http-only", cookies)
	}
}
