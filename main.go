package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"unionlotto/cmd"
	"unionlotto/config"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// A local .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to load .env: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	if len(os.Args) > 1 {
		if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
			log.Fatalf("%s error: %v", os.Args[1], err)
		}
		return
	}

	// Run the bot
	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	cfg := config.Get()
	cmd.ConfigureLogging(cfg)

	switch name {
	case "pick":
		return cmd.RunPick(ctx, cfg, os.Stdout, args)
	case "ai":
		return cmd.RunAI(ctx, cfg, os.Stdout, args)
	default:
		return fmt.Errorf("unknown command %q (usage: unionlotto [pick [n] [--seed s] | ai \"<context>\"])", name)
	}
}
