package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/edrd/dudu/internal/httpclient"
	"github.com/edrd/dudu/internal/logging"
	"github.com/edrd/dudu/internal/model"
	"github.com/edrd/dudu/internal/ui"
)

// appName names the log directory and log file.
const appName = "dudu"

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	closeLog func() error
	state    *model.ApplicationState
	invoker  *httpclient.Invoker
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, closeLog, err := logging.Setup(appName, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return newApp(fyneApp, cfg, logger, closeLog), nil
}

// newApp wires an App around an existing logger.
func newApp(fyneApp fyne.App, cfg *Config, logger *slog.Logger, closeLog func() error) *App {
	logger.Info("initializing application",
		slog.Bool("debug", cfg.Debug),
		slog.String("theme", cfg.Theme),
	)

	ui.ApplyTheme(fyneApp, cfg.Theme)

	a := &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		closeLog: closeLog,
		state:    model.NewApplicationState(),
		invoker:  httpclient.NewInvoker(logger, httpclient.WithDebug(cfg.Debug)),
	}

	logger.Info("application initialized successfully")
	return a
}

// Run shows the window and runs the Fyne event loop until the window closes.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Invoker returns the HTTP invoker.
func (a *App) Invoker() ui.RequestInvoker {
	return a.invoker
}

// Config returns the configuration the app was built with.
func (a *App) Config() *Config {
	return a.config
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
