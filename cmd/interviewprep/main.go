package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/api"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/auth"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/config"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/media"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/ui"
)

func main() {
	envFile := flag.String("env", ".env", "path to env file (missing file is ignored)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load %s: %v", *envFile, err)
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Interview prep client starting")
	log.Printf("API URL: %s", cfg.BaseURL)
	log.Printf("Token file: %s", cfg.TokenFile)

	tokens, err := auth.NewTokenStore(cfg.TokenFile)
	if err != nil {
		log.Fatalf("Failed to open token store: %v", err)
	}

	// The gateway's 401 hook routes the app back to the landing screen, so
	// the app is created first and the client points at it.
	var app *ui.App
	client := api.NewClient(cfg.BaseURL, cfg.HTTPTimeout, tokens, func() {
		if app != nil {
			app.NavigateUnauthorized()
		}
	})

	users := auth.NewContext(tokens, client)

	capture := media.NewConsoleCapture()
	playback := media.NewConsolePlayback(os.Stdout)
	camera := media.NewStubCamera("default", true)

	app = ui.New(cfg, client, users, capture, playback, camera, os.Stdin, os.Stdout)

	if cfg.ProfileFile != "" {
		profile, err := config.LoadProfile(cfg.ProfileFile)
		if err != nil {
			log.Printf("Ignoring profile %s: %v", cfg.ProfileFile, err)
		} else {
			app.UseProfile(profile)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("App exited with error: %v", err)
	}
}
