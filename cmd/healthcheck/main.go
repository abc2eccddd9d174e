// Package main probes the web service gRPC health endpoint and exits non-zero
// when it is not SERVING.
package main

import (
	"context"
	"flag"
	"os"

	healthcheckcmd "github.com/homeoinvent/homeoinvent/internal/cmd/healthcheck"
	"github.com/homeoinvent/homeoinvent/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("load env: %v", err)
	}
	cfg, err := healthcheckcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := healthcheckcmd.Run(context.Background(), cfg, nil); err != nil {
		config.Exitf("unhealthy: %v", err)
	}
}
