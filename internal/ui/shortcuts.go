package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var shortcutHelp = []struct{ action, key string }{
	{"Execute Request", "⌘/Ctrl Return"},
	{"Execute from URL field", "Return"},
	{"Focus URL", "⌘/Ctrl K"},
}

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd/Ctrl+Enter: execute request
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: execute request")
		w.requestPanel.TriggerExecute()
	})

	// Cmd/Ctrl+K: focus URL field
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyK,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: focus URL")
		w.requestPanel.FocusURL(canvas)
	})
}
