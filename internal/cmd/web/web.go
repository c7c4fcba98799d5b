// Package web parses configuration for and runs the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/sip/internal/platform/cmd"
	"github.com/louisbranch/sip/internal/services/web"
	"github.com/louisbranch/sip/internal/services/web/modules/practice"
	"github.com/louisbranch/sip/internal/services/web/modules/publicauth"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"SIP_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	CSRFSecret          string `env:"SIP_WEB_CSRF_SECRET"`
	TrustForwardedProto bool   `env:"SIP_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig loads environment defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return parseConfig(fs, args, cmd.ParseConfig[Config])
}

func parseConfig(fs *flag.FlagSet, args []string, load func(*Config) error) (Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CSRFSecret, "csrf-secret", cfg.CSRFSecret, "Secret used to sign form tokens")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto from a trusted proxy")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(serverConfig(cfg))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// serverConfig backs accounts and practice data with in-process stores.
// Both are lost on restart.
func serverConfig(cfg Config) web.Config {
	return web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		CSRFSecret:          csrfSecret(cfg.CSRFSecret),
		TrustForwardedProto: cfg.TrustForwardedProto,
		AuthGateway:         publicauth.NewMemoryGateway(),
		PracticeStore:       practice.NewMemoryStore(),
	}
}

// csrfSecret falls back to a per-process secret; tokens then do not
// survive a restart.
func csrfSecret(configured string) string {
	if secret := strings.TrimSpace(configured); secret != "" {
		return secret
	}
	log.Printf("csrf secret not configured; using an ephemeral secret env=SIP_WEB_CSRF_SECRET")
	return uuid.NewString()
}
