package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"stylometer/internal/cmd"
	"stylometer/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, cmd.RootCmd, fang.WithVersion(version.Short())); err != nil {
		stop()
		os.Exit(1)
	}
}
