// Package sessioncookie reads and writes the cookie carrying the auth
// session id.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
)

// Name is the session cookie name.
const Name = "sip_session"

// Jar issues session cookies under one scheme policy.
type Jar struct {
	Policy requestmeta.SchemePolicy
}

// Read returns the trimmed session id when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// Write sets the session cookie. Blank ids are ignored.
func (j Jar) Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	sessionID = strings.TrimSpace(sessionID)
	if w == nil || sessionID == "" {
		return
	}
	http.SetCookie(w, j.cookie(r, sessionID, 0))
}

// Clear expires the session cookie.
func (j Jar) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, j.cookie(r, "", -1))
}

func (j Jar) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.Policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
