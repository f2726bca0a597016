package status

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edrd/dudu/internal/model"
)

// Phase is what the status bar is currently reporting.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseExecuting
	PhaseCompleted
	PhaseFailed
)

// StatusBar summarises the last request with an icon and one line of text.
// Each phase uses a distinct icon shape, not just a colour:
//   - Ready: empty radio button
//   - Executing: circular arrows
//   - Completed: checkmark, with status code, duration and size
//   - Failed: X, with the classified error
type StatusBar struct {
	widget.BaseWidget

	state       *model.ResponseState
	statusLabel *widget.Label
	indicator   *widget.Icon
	phase       Phase
}

// NewStatusBar creates a status bar bound to the response state.
func NewStatusBar(state *model.ResponseState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.RadioButtonIcon()),
	}
	s.ExtendBaseWidget(s)

	state.Loading.AddListener(binding.NewDataListener(s.update))
	state.Error.AddListener(binding.NewDataListener(s.update))
	state.Summary.AddListener(binding.NewDataListener(s.update))

	s.update()
	return s
}

// Phase returns the phase currently displayed.
func (s *StatusBar) Phase() Phase {
	return s.phase
}

// Text returns the status line currently displayed.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

func (s *StatusBar) update() {
	loading, _ := s.state.Loading.Get()
	errMsg, _ := s.state.Error.Get()
	summary, _ := s.state.Summary.Get()

	switch {
	case loading:
		s.phase = PhaseExecuting
		s.indicator.SetResource(theme.ViewRefreshIcon())
		s.statusLabel.SetText("Executing…")
	case errMsg != "":
		s.phase = PhaseFailed
		s.indicator.SetResource(theme.ErrorIcon())
		s.statusLabel.SetText(errMsg)
	case summary != "":
		s.phase = PhaseCompleted
		s.indicator.SetResource(theme.ConfirmIcon())
		s.statusLabel.SetText(summary)
	default:
		s.phase = PhaseReady
		s.indicator.SetResource(theme.RadioButtonIcon())
		s.statusLabel.SetText("Ready")
	}
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, s.indicator, nil, s.statusLabel))
}
