// SPDX-License-Identifier: MIT

// Command homology reads a chain complex or simplicial complex from YAML and
// prints its reduced boundary maps and Betti numbers.
//
//	homology -closure -ring mod:2 complex.yaml
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	homologycmd "github.com/katalvlaran/homology/internal/cmd/homology"
	"github.com/katalvlaran/homology/internal/platform/config"
)

func main() {
	cfg, err := homologycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := homologycmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
