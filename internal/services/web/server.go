// Package web hosts the browser-facing SIP web service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/sip/internal/platform/timeouts"
	"github.com/louisbranch/sip/internal/services/web/app"
	"github.com/louisbranch/sip/internal/services/web/module"
	"github.com/louisbranch/sip/internal/services/web/modules"
	"github.com/louisbranch/sip/internal/services/web/modules/practice"
	"github.com/louisbranch/sip/internal/services/web/modules/publicauth"
	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/sip/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr   string
	CSRFSecret string
	// TrustForwardedProto honors X-Forwarded-Proto when deciding cookie
	// security and same-origin checks. Enable only behind a trusted proxy.
	TrustForwardedProto bool
	// AuthGateway is the account back end. Nil reports sign-in as unavailable.
	AuthGateway publicauth.AuthGateway
	// PracticeStore holds question sets and sessions. Nil reports practice
	// data as unavailable.
	PracticeStore practice.Store
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with every module mounted.
func NewHandler(cfg Config) (http.Handler, error) {
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	shell, err := templates.NewShell()
	if err != nil {
		return nil, fmt.Errorf("build page shell: %w", err)
	}
	protector, err := csrf.New(cfg.CSRFSecret, policy)
	if err != nil {
		return nil, fmt.Errorf("build csrf protector: %w", err)
	}
	gateway := cfg.AuthGateway
	if gateway == nil {
		gateway = publicauth.UnavailableGateway()
	}
	store := cfg.PracticeStore
	if store == nil {
		store = practice.UnavailableStore()
	}
	notices := flash.Store{Policy: policy}
	pages, err := pagerender.New(pagerender.Options{
		Shell:  shell,
		CSRF:   protector,
		Flash:  notices,
		Viewer: publicauth.ViewerResolver(gateway),
		Policy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("build page renderer: %w", err)
	}
	deps := module.Dependencies{
		Pages:    pages,
		CSRF:     protector,
		Flash:    notices,
		Sessions: sessioncookie.Jar{Policy: policy},
	}
	root, err := app.Compose(app.ComposeInput{
		Modules: modules.DefaultModules(gateway, store, deps),
		Fallback: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pages.WriteError(w, r, http.StatusNotFound)
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	allowGet := httpx.AllowMethods(http.MethodGet, http.MethodHead)
	root.Handle(routepath.Root+"{$}", allowGet(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.Practice)
	})))
	root.Handle(routepath.Health, allowGet(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "ok")
	})))
	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.AccessLog(),
		httpx.RecoverPanic(),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening addr=%s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
