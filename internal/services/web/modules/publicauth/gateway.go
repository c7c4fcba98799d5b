package publicauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/sip/internal/platform/timeouts"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

// Registration is one account creation request.
type Registration struct {
	Username string
	Email    string
	Password string
}

// Viewer is the account behind a session.
type Viewer struct {
	Username string
}

// AuthGateway abstracts the external account and session back end.
//
// Register and Login return a new session id. Failures are typed
// platform/errors values: KindInvalidInput with a Field for per-field
// problems, KindUnauthorized for rejected credentials, and KindUnavailable
// when the back end cannot be reached.
type AuthGateway interface {
	Register(ctx context.Context, reg Registration) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Viewer(ctx context.Context, sessionID string) (Viewer, bool)
	Logout(ctx context.Context, sessionID string) error
}

const authServiceUnavailableMessage = "auth service is not configured"

func errAuthUnavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, "flash.auth_unavailable", authServiceUnavailableMessage)
}

// unavailableAuthGateway answers every call as if the back end were down.
type unavailableAuthGateway struct{}

func (unavailableAuthGateway) Register(context.Context, Registration) (string, error) {
	return "", errAuthUnavailable()
}

func (unavailableAuthGateway) Login(context.Context, string, string) (string, error) {
	return "", errAuthUnavailable()
}

func (unavailableAuthGateway) Viewer(context.Context, string) (Viewer, bool) {
	return Viewer{}, false
}

func (unavailableAuthGateway) Logout(context.Context, string) error {
	return errAuthUnavailable()
}

// UnavailableGateway returns the gateway used when no back end is configured.
func UnavailableGateway() AuthGateway {
	return unavailableAuthGateway{}
}

// ViewerResolver resolves the signed-in account from the session cookie.
func ViewerResolver(gateway AuthGateway) pagerender.ViewerFunc {
	if gateway == nil {
		gateway = unavailableAuthGateway{}
	}
	return func(r *http.Request) templates.Viewer {
		sessionID, ok := sessioncookie.Read(r)
		if !ok {
			return templates.Viewer{}
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.AuthRequest)
		defer cancel()
		viewer, ok := gateway.Viewer(ctx, sessionID)
		if !ok {
			return templates.Viewer{}
		}
		return templates.Viewer{Username: strings.TrimSpace(viewer.Username)}
	}
}
