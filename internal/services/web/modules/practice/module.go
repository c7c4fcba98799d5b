// Package practice serves question sets, practice sessions, and history.
package practice

import (
	"fmt"
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/module"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

// Module owns the question set, practice, and history routes.
type Module struct {
	store Store
	deps  module.Dependencies
}

// New builds the module. A nil store answers every call as unavailable.
func New(store Store, deps module.Dependencies) Module {
	return Module{store: store, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "practice" }

// Mount wires the module routes.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, fmt.Errorf("practice: %w", err)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{
		service: newService(m.store),
		pages:   m.deps.Pages,
		csrf:    m.deps.CSRF,
		flash:   m.deps.Flash,
	})
	return module.Mount{
		Patterns: []string{routepath.Practice, routepath.QuestionSets, routepath.History},
		Handler:  mux,
	}, nil
}
