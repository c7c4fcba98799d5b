// Package publicauth serves the registration, login, and logout pages.
package publicauth

import (
	"fmt"
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/module"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

// Module owns the public auth routes.
type Module struct {
	gateway AuthGateway
	deps    module.Dependencies
}

// New builds the module. A nil gateway answers every auth call as
// unavailable.
func New(gateway AuthGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns the stable module identifier.
func (Module) ID() string {
	return "publicauth"
}

// Mount returns the module's route mount.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, fmt.Errorf("publicauth: %w", err)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{
		service:  newServiceWithGateway(m.gateway),
		pages:    m.deps.Pages,
		csrf:     m.deps.CSRF,
		flash:    m.deps.Flash,
		sessions: m.deps.Sessions,
	})
	return module.Mount{
		Patterns: []string{routepath.Register, routepath.Login, routepath.Logout},
		Handler:  mux,
	}, nil
}
