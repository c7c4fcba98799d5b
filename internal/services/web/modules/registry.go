package modules

import (
	"github.com/louisbranch/sip/internal/services/web/module"
	"github.com/louisbranch/sip/internal/services/web/modules/practice"
	"github.com/louisbranch/sip/internal/services/web/modules/publicauth"
)

// DefaultModules returns the web modules in mount order. A nil gateway
// serves the auth pages with sign-in reported as unavailable, and a nil
// store does the same for practice data.
func DefaultModules(gateway publicauth.AuthGateway, store practice.Store, deps module.Dependencies) []Module {
	return []Module{
		publicauth.New(gateway, deps),
		practice.New(store, deps),
	}
}
