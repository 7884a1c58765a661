// Package main implements the entry point for the trivia generator,
// which turns plain-text album lists into validated music trivia
// question sets with resolved cover art.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
