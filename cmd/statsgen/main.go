// Package main starts the stats generator process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	statsgencmd "github.com/louisbranch/netobs-statsgen/internal/cmd/statsgen"
)

func main() {
	cfg, err := statsgencmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[STATSGEN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HealthCheck {
		if err := statsgencmd.CheckHealth(ctx, cfg); err != nil {
			log.Fatalf("health check: %v", err)
		}
		return
	}
	if err := statsgencmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
