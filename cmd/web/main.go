// Package main starts the browser-facing web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	webcmd "github.com/louisbranch/sip/internal/cmd/web"
	"github.com/louisbranch/sip/internal/platform/cmd"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(cmd.LogPrefix(cmd.ServiceWeb))
	ctx, stop := cmd.SignalContext(context.Background())
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
