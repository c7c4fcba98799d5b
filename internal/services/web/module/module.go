// Package module defines the feature contract used by web composition.
package module

import (
	"errors"
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/platform/sessioncookie"
)

// Mount describes a module's routes. Every route in Handler is registered
// under each pattern in Patterns.
type Mount struct {
	Patterns []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies are the shared collaborators handed to every module.
type Dependencies struct {
	Pages    *pagerender.Renderer
	CSRF     *csrf.Protector
	Flash    flash.Store
	Sessions sessioncookie.Jar
}

// Validate reports missing collaborators.
func (d Dependencies) Validate() error {
	if d.Pages == nil {
		return errors.New("page renderer is required")
	}
	if d.CSRF == nil {
		return errors.New("csrf protector is required")
	}
	return nil
}
