// Command vibe is the terminal companion of the Vibe Coding hackathon: it
// shows the event tracks and lets you ask the VIBE assistant about them.
//
// Usage:
//
//	API_KEY=... vibe [flags]
//
// Flags:
//
//	-api-key string        Gemini API key (overrides API_KEY and GEMINI_API_KEY)
//	-model string          Model ID (default: gemini-2.5-flash)
//	-tracks string         Path to a track catalog JSON file
//	-export-tracks string  Write the track catalog to a JSON file and exit
//	-log-file string       Write diagnostics to this file
//
// Environment:
//
//	API_KEY, GEMINI_API_KEY  Gemini API key (API_KEY wins)
//	VIBE_MODEL               Model ID
//	VIBE_TRACKS_FILE         Path to a track catalog JSON file
//	VIBE_LOG_FILE            Write diagnostics to this file
//	VIBE_LOG_LEVEL           Log level: trace, debug, info, warn, error (default: info)
//	VIBE_REQUEST_TIMEOUT     Bound on a single request, e.g. 30s (default: none)
//
// Without an API key the assistant stays offline and answers every question
// with a notice instead of calling the model.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v11"
	"github.com/vibecod3rs/vibe"
	bt "github.com/vibecod3rs/vibe/bubbletea"
	vibejson "github.com/vibecod3rs/vibe/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vibe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(env.ToMap(os.Environ()))
	if err != nil {
		return err
	}

	// Flags override the environment.
	var (
		apiKey       = flag.String("api-key", "", "Gemini API key (overrides API_KEY and GEMINI_API_KEY)")
		model        = flag.String("model", cfg.Model, "Model ID")
		tracksPath   = flag.String("tracks", cfg.TracksFile, "Path to a track catalog JSON file")
		exportTracks = flag.String("export-tracks", "", "Write the track catalog to a JSON file and exit")
		logFile      = flag.String("log-file", cfg.LogFile, "Write diagnostics to this file")
	)
	flag.Parse()
	cfg.Model = *model
	cfg.TracksFile = *tracksPath
	cfg.LogFile = *logFile

	catalog, err := loadCatalog(cfg.TracksFile)
	if err != nil {
		return err
	}
	if *exportTracks != "" {
		if err := vibejson.SaveCatalog(*exportTracks, catalog); err != nil {
			return fmt.Errorf("export tracks: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Tracks written to %s\n", *exportTracks)
		return nil
	}

	logger, closeLog, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	provider, err := resolveProvider(ctx, cfg.apiKey(*apiKey), cfg.Model)
	if err != nil {
		return err
	}
	if provider == nil {
		logger.Warn().Msg("no API key configured, assistant is offline")
	}

	chatConfig := vibe.DefaultChatConfig()
	chatConfig.Model = cfg.Model
	assistant := vibe.NewAssistant(provider,
		vibe.WithChatConfig(chatConfig),
		vibe.WithLogger(logger),
		vibe.WithTimeout(cfg.RequestTimeout),
	)

	conv := vibe.NewConversation(vibe.ModelMessage(vibe.Greeting))
	tuiModel := bt.New(assistant, conv, bt.Config{
		Context: ctx,
		Event:   vibe.DefaultEvent(),
		Catalog: catalog,
		Theme:   vibe.DefaultTheme(),
	})

	logger.Info().Str("model", cfg.Model).Int("tracks", catalog.Len()).Msg("starting")
	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func loadCatalog(path string) (vibe.Catalog, error) {
	if path == "" {
		return vibe.DefaultCatalog(), nil
	}
	c, err := vibejson.LoadCatalog(path)
	if err != nil {
		return vibe.Catalog{}, fmt.Errorf("load tracks: %w", err)
	}
	return c, nil
}
