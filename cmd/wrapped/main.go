// Package main starts the wrapped slideshow service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	wrappedcmd "github.com/louisbranch/wrapped/internal/cmd/wrapped"
	"github.com/louisbranch/wrapped/internal/platform/config"
)

func main() {
	cfg, err := wrappedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := wrappedcmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
