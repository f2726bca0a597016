package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/edrd/dudu/internal/domain"
	apperrors "github.com/edrd/dudu/internal/errors"
	"github.com/edrd/dudu/internal/model"
	"github.com/edrd/dudu/internal/ui/request"
	"github.com/edrd/dudu/internal/ui/response"
	"github.com/edrd/dudu/internal/ui/status"
)

// RequestInvoker sends a request and returns the response.
type RequestInvoker interface {
	Invoke(ctx context.Context, req domain.Request) (*domain.Response, error)
}

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	Invoker() RequestInvoker
}

// MainWindow is the application shell: request form on top, response body in
// the middle, status bar at the bottom.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController

	requestPanel  *request.RequestPanel
	responsePanel *response.ResponsePanel
	statusBar     *status.StatusBar
}

// NewMainWindow creates the main window and wires its panels to the app state.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow(WindowTitle)

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	mw.requestPanel = request.NewRequestPanel(mw.state.Request, mw.execute, mw.logger)
	mw.responsePanel = response.NewResponsePanel(mw.state.Response)
	mw.statusBar = status.NewStatusBar(mw.state.Response)

	mw.requestPanel.SetOnComplete(func(err error) {
		if err != nil {
			mw.logger.Warn("request did not complete", slog.Any("error", err))
		}
	})

	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(900, 600))

	return mw
}

// execute sends the current request and records the outcome. On failure the
// response body is left untouched and the classified error is shown in the
// status bar instead.
func (w *MainWindow) execute(ctx context.Context) error {
	req := w.state.Request.Snapshot()

	w.logger.Info("executing request",
		slog.String("method", req.Method.String()),
		slog.String("url", req.URL),
	)

	w.state.Response.SetLoading(true)
	defer w.state.Response.SetLoading(false)

	resp, err := w.app.Invoker().Invoke(ctx, req)
	if err != nil {
		uiErr := apperrors.ClassifyError(err)
		w.state.Response.Fail(uiErr.Summary())
		return err
	}

	w.state.Response.Complete(resp)

	w.logger.Info("request completed",
		slog.String("request_id", resp.RequestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", resp.Duration),
		slog.Bool("no_content", domain.IsNoContent(w.state.Response.Body())),
	)
	return nil
}

// SetContent builds and sets the main window layout.
//
//	┌──────────────────────────────────────────────┐
//	│ [GET ▾] [ https://…                ] [Execute]│
//	├──────────────────────────────────────────────┤
//	│                                              │
//	│  Response body                               │
//	│                                              │
//	├──────────────────────────────────────────────┤
//	│  Status Bar                                  │
//	└──────────────────────────────────────────────┘
func (w *MainWindow) SetContent() {
	w.window.SetContent(container.NewBorder(
		w.requestPanel, // top
		w.statusBar,    // bottom
		nil,
		nil,
		container.NewPadded(w.responsePanel),
	))
}

func (w *MainWindow) setupMainMenu() {
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(help))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
