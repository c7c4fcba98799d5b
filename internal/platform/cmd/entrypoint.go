// Package cmd holds the shared startup sequence for SIP service commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/louisbranch/sip/internal/platform/config"
	"github.com/louisbranch/sip/internal/platform/otel"
	"github.com/louisbranch/sip/internal/platform/timeouts"
)

// ServiceWeb identifies the browser-facing web service.
const ServiceWeb = "web"

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Nil args parse as none.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix returns the standard log prefix for a service, e.g. "[WEB] ".
func LogPrefix(service string) string {
	service = strings.ToUpper(strings.TrimSpace(service))
	if service == "" {
		return ""
	}
	return "[" + service + "] "
}

// SignalContext returns a context cancelled on interrupt or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

type telemetrySetup func(context.Context, string) (func(context.Context) error, error)

// RunWithTelemetry starts tracing for service, runs the service loop, and
// flushes pending spans once the loop returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return runWithTelemetry(ctx, service, otel.Setup, run)
}

func runWithTelemetry(ctx context.Context, service string, setup telemetrySetup, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	case ctx == nil:
		return errors.New("context is required")
	}
	shutdown, err := setup(ctx, service)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}
