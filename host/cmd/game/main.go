package main

import (
	"log/slog"
	"os"

	"github.com/nobonobo/solar-top/config"
)

func main() {
	slog.Info("Started")
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	if err := runApplication(cfg); err != nil {
		slog.Error("Crashed",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	slog.Info("Stopped")
}
