package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/quickly-tally/router"
)

func main() {
	// Ctrl-C cancels the running command
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := router.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("Error running command", "error", err)
		os.Exit(1)
	}
}
