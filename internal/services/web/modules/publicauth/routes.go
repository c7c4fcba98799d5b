package publicauth

import (
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.Handle(routepath.Register+"{$}", httpx.AllowMethods(http.MethodGet, http.MethodPost)(http.HandlerFunc(h.register)))
	mux.Handle(routepath.Login+"{$}", httpx.AllowMethods(http.MethodGet, http.MethodPost)(http.HandlerFunc(h.login)))
	mux.Handle(routepath.Logout+"{$}", httpx.AllowMethods(http.MethodPost)(http.HandlerFunc(h.logout)))
}
