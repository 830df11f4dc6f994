package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hashcash/internal/cli"
	"hashcash/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.NewLogger(false).Error("%v", err)
		stop()
		os.Exit(1)
	}
}
