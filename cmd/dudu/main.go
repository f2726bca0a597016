package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	duduApp "github.com/edrd/dudu/internal/app"
	"github.com/edrd/dudu/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting Dudu's HTTP Client")

	cfg, err := duduApp.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fyneApp := app.NewWithID("io.gitlab.edrd.dudu")

	duduApp, err := duduApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer duduApp.Close()

	mainWindow := ui.NewMainWindow(duduApp.FyneApp(), duduApp)

	// Blocks until the window is closed
	duduApp.Run(mainWindow.Window())

	duduApp.Logger().Info("application shutdown complete")
	return nil
}
