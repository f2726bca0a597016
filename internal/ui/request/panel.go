package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/edrd/dudu/internal/action"
	"github.com/edrd/dudu/internal/domain"
	"github.com/edrd/dudu/internal/model"
	"github.com/edrd/dudu/internal/ui/components"
)

// RequestPanel is the request form: method selector, URL entry and the
// Execute button, laid out on a single row.
type RequestPanel struct {
	widget.BaseWidget

	state  *model.RequestState
	logger *slog.Logger

	methodSelector *MethodSelector
	urlEntry       *widget.Entry
	executeBtn     *components.AsyncButton
}

// NewRequestPanel creates a request form bound to state. Pressing Execute
// (or Enter in the URL field) runs execute; the button stays disabled until
// it returns.
func NewRequestPanel(state *model.RequestState, execute action.Func, logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{
		state:  state,
		logger: logger,
	}

	p.methodSelector = NewMethodSelector()
	p.methodSelector.SetSelected(state.CurrentMethod())
	p.methodSelector.SetOnChanged(func(m domain.Method) {
		if err := p.state.SetMethod(m); err != nil {
			p.logger.Warn("rejected method selection", slog.Any("error", err))
			return
		}
		p.logger.Debug("method selected", slog.String("method", m.String()))
	})

	// Keep the selector in step with programmatic state changes.
	state.Method.AddListener(binding.NewDataListener(func() {
		if current := p.state.CurrentMethod(); current != p.methodSelector.Selected() {
			p.methodSelector.SetSelected(current)
		}
	}))

	p.urlEntry = widget.NewEntry()
	p.urlEntry.SetPlaceHolder("https://example.com/api")
	p.urlEntry.Bind(state.URL)
	p.urlEntry.OnSubmitted = func(string) {
		p.TriggerExecute()
	}

	p.executeBtn = components.NewAsyncButton("Execute", execute)

	p.ExtendBaseWidget(p)
	return p
}

// SetOnComplete sets a callback receiving the result of each execution.
func (p *RequestPanel) SetOnComplete(fn func(err error)) {
	p.executeBtn.SetOnComplete(fn)
}

// TriggerExecute runs the request unless one is already in flight (for keyboard shortcut).
func (p *RequestPanel) TriggerExecute() {
	if p.executeBtn.Pending() {
		p.logger.Debug("execute ignored, request already pending")
		return
	}
	p.executeBtn.Trigger()
}

// Executing reports whether a request is in flight.
func (p *RequestPanel) Executing() bool {
	return p.executeBtn.Pending()
}

// FocusURL moves keyboard focus to the URL field (for keyboard shortcut).
func (p *RequestPanel) FocusURL(c fyne.Canvas) {
	if c != nil {
		c.Focus(p.urlEntry)
	}
}

// CreateRenderer implements fyne.Widget.
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(
		nil, nil,
		p.methodSelector, // left
		p.executeBtn,     // right
		p.urlEntry,       // center
	)
	return widget.NewSimpleRenderer(container.NewPadded(row))
}
