package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goliatone/go-formbuilder/internal/app"
	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/session"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	sessionOpts := []session.Option{session.WithLogger(logger)}
	if cfg.IDs == config.IDsUUID {
		sessionOpts = append(sessionOpts, session.WithIDGenerator(session.UUIDGenerator{}))
	}

	pal := palette.Default()
	if cfg.PaletteDir != "" {
		pal, err = palette.LoadFS(os.DirFS(cfg.PaletteDir))
		if err != nil {
			log.Fatalf("Failed to load palette: %v", err)
		}
	}

	builder, err := app.New(session.New(sessionOpts...), prompt.NewSurveyDriver(os.Stdout),
		app.WithPalette(pal),
		app.WithFormat(cfg.Format),
		app.WithOutput(cfg.Output),
		app.WithDebug(cfg.Debug),
		app.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to start builder: %v", err)
	}
	if err := builder.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Builder stopped: %v", err)
	}
}
