package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dailylift/dailylift/internal/app"
	"github.com/dailylift/dailylift/internal/calc"
	"github.com/dailylift/dailylift/internal/config"
	"github.com/dailylift/dailylift/internal/logger"
)

// setup loads configuration, installs the logger and wires the app.
func setup() (*app.App, error) {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return nil, err
	}
	return a, nil
}

func closeApp(a *app.App) {
	err := a.Close()
	if err != nil {
		slog.Error("failed to close app", "error", err)
	}
}

// PrintError reports a failed command; validation errors print as plain messages.
func PrintError(err error) {
	var verr *calc.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, verr.Message)
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
