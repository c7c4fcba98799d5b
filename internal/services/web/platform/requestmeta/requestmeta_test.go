package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSchemePolicyScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		forwarded string
		policy    SchemePolicy
		want      string
	}{
		{name: "plain http", target: "http://sip.test/login/", want: "http"},
		{name: "tls request", target: "https://sip.test/login/", want: "https"},
		{name: "untrusted forwarded proto ignored", target: "http://sip.test/login/", forwarded: "https", want: "http"},
		{name: "trusted forwarded proto used", target: "http://sip.test/login/", forwarded: "https", policy: SchemePolicy{TrustForwardedProto: true}, want: "https"},
		{name: "trusted garbage ignored", target: "http://sip.test/login/", forwarded: "gopher", policy: SchemePolicy{TrustForwardedProto: true}, want: "http"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			if got := tc.policy.Scheme(req); got != tc.want {
				t.Fatalf("Scheme() = %q, want %q", got, tc.want)
			}
			if got := tc.policy.IsHTTPS(req); got != (tc.want == "https") {
				t.Fatalf("IsHTTPS() = %v", got)
			}
		})
	}
}

func TestSchemePolicyNilRequest(t *testing.T) {
	t.Parallel()

	var policy SchemePolicy
	if policy.IsHTTPS(nil) {
		t.Fatal("IsHTTPS(nil) = true")
	}
	if policy.SameOrigin(nil) || policy.CrossOrigin(nil) {
		t.Fatal("expected nil request to prove nothing")
	}
}

func TestSchemePolicySameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		policy  SchemePolicy
		same    bool
		cross   bool
	}{
		{name: "matching origin", origin: "https://sip.test", same: true},
		{name: "explicit default port", origin: "https://sip.test:443", same: true},
		{name: "matching referer", referer: "https://sip.test/register/", same: true},
		{name: "other host", origin: "https://evil.test", cross: true},
		{name: "scheme downgrade", origin: "http://sip.test", cross: true},
		{name: "other port", origin: "https://sip.test:8443", cross: true},
		{name: "no evidence", same: false, cross: false},
		{name: "malformed origin", origin: "://", cross: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "https://sip.test/login/", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if got := tc.policy.SameOrigin(req); got != tc.same {
				t.Fatalf("SameOrigin() = %v, want %v", got, tc.same)
			}
			if got := tc.policy.CrossOrigin(req); got != tc.cross {
				t.Fatalf("CrossOrigin() = %v, want %v", got, tc.cross)
			}
		})
	}
}

func TestSchemePolicySameOriginBehindProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/login/", nil)
	req.Host = "sip.test"
	req.Header.Set("Origin", "https://sip.test")
	req.Header.Set("X-Forwarded-Proto", "https")

	if (SchemePolicy{}).SameOrigin(req) {
		t.Fatal("expected untrusted proxy header to be ignored")
	}
	if !(SchemePolicy{TrustForwardedProto: true}).SameOrigin(req) {
		t.Fatal("expected trusted proxy header to prove same origin")
	}
}
