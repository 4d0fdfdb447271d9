package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/msto63/morsetree/cmd/morse/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// a second signal kills the process the default way
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
