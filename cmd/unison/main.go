// Package main provides the entry point for the unison CLI tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/unisonlabs/unison/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(cmd.Execute(ctx, os.Args[1:]))
}
