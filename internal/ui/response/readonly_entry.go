package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ReadOnlyEntry is a multi-line Entry that renders at full contrast and
// supports selection and copy, but rejects every edit.
type ReadOnlyEntry struct {
	widget.Entry
}

// NewReadOnlyEntry creates a word-wrapping, read-only text area.
func NewReadOnlyEntry() *ReadOnlyEntry {
	e := &ReadOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

// SetBold switches between bold and regular text.
func (e *ReadOnlyEntry) SetBold(bold bool) {
	if e.TextStyle.Bold == bold {
		return
	}
	e.TextStyle.Bold = bold
	e.Refresh()
}

// TypedRune drops all character input.
func (e *ReadOnlyEntry) TypedRune(_ rune) {}

// TypedKey passes navigation keys through and drops the rest.
func (e *ReadOnlyEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyPageUp, fyne.KeyPageDown:
		e.Entry.TypedKey(key)
	}
}

// TypedShortcut keeps copy and select-all.
func (e *ReadOnlyEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}
