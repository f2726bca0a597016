package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/edrd/dudu/internal/model"
)

// ResponsePanel shows the body of the last response verbatim.
// An empty body is shown as "<no content>" in bold.
type ResponsePanel struct {
	widget.BaseWidget

	state      *model.ResponseState
	body       *ReadOnlyEntry
	loadingBar *widget.ProgressBarInfinite
}

// NewResponsePanel creates a response panel bound to state.
func NewResponsePanel(state *model.ResponseState) *ResponsePanel {
	p := &ResponsePanel{
		state:      state,
		body:       NewReadOnlyEntry(),
		loadingBar: widget.NewProgressBarInfinite(),
	}
	p.loadingBar.Stop()
	p.loadingBar.Hide()

	p.ExtendBaseWidget(p)
	p.setupBindings()
	return p
}

// setupBindings wires the display to the response state. Listeners only read
// state, so redrawing never changes what is shown.
func (p *ResponsePanel) setupBindings() {
	p.body.Bind(p.state.Text)

	p.state.NoContent.AddListener(binding.NewDataListener(func() {
		noContent, _ := p.state.NoContent.Get()
		p.body.SetBold(noContent)
	}))

	p.state.Loading.AddListener(binding.NewDataListener(func() {
		loading, _ := p.state.Loading.Get()
		if loading {
			p.loadingBar.Start()
			p.loadingBar.Show()
		} else {
			p.loadingBar.Stop()
			p.loadingBar.Hide()
		}
	}))
}

// DisplayedText returns the text currently on screen.
func (p *ResponsePanel) DisplayedText() string {
	return p.body.Text
}

// Bold reports whether the body is rendered in bold.
func (p *ResponsePanel) Bold() bool {
	return p.body.TextStyle.Bold
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		nil,
		p.loadingBar,
		nil,
		nil,
		p.body,
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (p *ResponsePanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}
