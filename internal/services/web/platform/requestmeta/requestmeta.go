// Package requestmeta resolves request scheme and origin facts used when
// issuing cookies and checking form posts.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls which request metadata is trusted when resolving
// the scheme. X-Forwarded-Proto is only honored when TrustForwardedProto is
// set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Scheme returns "https" or "http" for r.
func (p SchemePolicy) Scheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if p.TrustForwardedProto {
		switch proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto {
		case "http", "https":
			return proto
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether cookies for r should be marked Secure.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.Scheme(r) == "https"
}

// SameOrigin reports whether the Origin header, or the Referer when Origin
// is absent, names the host r was sent to. Requests carrying neither header
// are reported as not proven.
func (p SchemePolicy) SameOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	source := strings.TrimSpace(r.Header.Get("Origin"))
	if source == "" {
		source = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if source == "" {
		return false
	}
	want, ok := p.origin(r)
	if !ok {
		return false
	}
	got, ok := parseOrigin(source)
	if !ok {
		return false
	}
	return got == want
}

// CrossOrigin reports whether r carries origin evidence that points at a
// different site. Requests without Origin or Referer are not cross-origin.
func (p SchemePolicy) CrossOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.Header.Get("Origin") == "" && r.Header.Get("Referer") == "" {
		return false
	}
	return !p.SameOrigin(r)
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (p SchemePolicy) origin(r *http.Request) (origin, bool) {
	scheme := p.Scheme(r)
	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	parsed, err := url.Parse("//" + strings.TrimSpace(host))
	if err != nil || parsed.Hostname() == "" {
		return origin{}, false
	}
	return normalizeOrigin(scheme, parsed.Hostname(), parsed.Port())
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	return normalizeOrigin(parsed.Scheme, parsed.Hostname(), parsed.Port())
}

func normalizeOrigin(scheme, host, port string) (origin, bool) {
	o := origin{
		scheme: strings.ToLower(strings.TrimSpace(scheme)),
		host:   strings.ToLower(strings.TrimSpace(host)),
		port:   strings.TrimSpace(port),
	}
	if o.port == "" {
		switch o.scheme {
		case "https":
			o.port = "443"
		case "http":
			o.port = "80"
		}
	}
	if o.scheme == "" || o.host == "" || o.port == "" {
		return origin{}, false
	}
	return o, true
}
