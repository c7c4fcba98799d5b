// Package csrf issues and verifies the anti-forgery token carried by every
// POST form.
package csrf

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
	"golang.org/x/net/xsrftoken"
)

const (
	// FieldName is the hidden form input carrying the token.
	FieldName = "csrf_token"
	// HeaderName may carry the token for script-driven posts.
	HeaderName = "X-CSRF-Token"
	// CookieName binds tokens to one browser.
	CookieName = "sip_csrf"
)

// actionID scopes tokens to form posts of this service.
const actionID = "sip-form"

// ErrInvalidToken reports a missing, expired, or forged token.
var ErrInvalidToken = apperrors.EK(apperrors.KindForbidden, "form.expired", "invalid csrf token")

// Protector issues and checks tokens.
type Protector struct {
	secret string
	policy requestmeta.SchemePolicy
	newID  func() string
}

// New builds a Protector. The secret must be non-empty.
func New(secret string, policy requestmeta.SchemePolicy) (*Protector, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("csrf secret is required")
	}
	return &Protector{
		secret: secret,
		policy: policy,
		newID:  uuid.NewString,
	}, nil
}

// Token returns a token for r, setting the client cookie when the browser
// does not have one yet.
func (p *Protector) Token(w http.ResponseWriter, r *http.Request) string {
	clientID, ok := clientID(r)
	if !ok {
		clientID = p.newID()
		if w != nil {
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    clientID,
				Path:     "/",
				HttpOnly: true,
				Secure:   p.policy.IsHTTPS(r),
				SameSite: http.SameSiteLaxMode,
			})
		}
	}
	return xsrftoken.Generate(p.secret, clientID, actionID)
}

// Verify checks the token posted with r. Cross-origin posts fail even with
// a valid token.
func (p *Protector) Verify(r *http.Request) error {
	if r == nil {
		return ErrInvalidToken
	}
	if p.policy.CrossOrigin(r) {
		return ErrInvalidToken
	}
	clientID, ok := clientID(r)
	if !ok {
		return ErrInvalidToken
	}
	token := strings.TrimSpace(r.Header.Get(HeaderName))
	if token == "" {
		token = strings.TrimSpace(r.PostFormValue(FieldName))
	}
	if token == "" || !xsrftoken.Valid(token, p.secret, clientID, actionID) {
		return ErrInvalidToken
	}
	return nil
}

func clientID(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if _, err := uuid.Parse(value); err != nil {
		return "", false
	}
	return value, true
}
