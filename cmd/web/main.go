// Package main starts the HomeoInvent web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/homeoinvent/homeoinvent/internal/cmd/web"
	"github.com/homeoinvent/homeoinvent/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("load env: %v", err)
	}
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
