package request

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/edrd/dudu/internal/domain"
)

// MethodSelector is a closed-choice control over the supported HTTP methods.
// The drop-down offers exactly domain.Methods(); the initial value is
// domain.DefaultMethod.
type MethodSelector struct {
	widget.BaseWidget

	selector *widget.Select
	selected domain.Method
	onChange func(domain.Method)
}

// NewMethodSelector creates a selector showing the default method.
func NewMethodSelector() *MethodSelector {
	m := &MethodSelector{selected: domain.DefaultMethod}

	m.selector = widget.NewSelect(domain.MethodNames(), func(name string) {
		method, err := domain.ParseMethod(name)
		if err != nil {
			return
		}
		m.selected = method
		if m.onChange != nil {
			m.onChange(method)
		}
	})
	m.selector.SetSelected(domain.DefaultMethod.String())

	m.ExtendBaseWidget(m)
	return m
}

// SetOnChanged sets the callback fired on every pick, including re-picking
// the current method.
func (m *MethodSelector) SetOnChanged(fn func(domain.Method)) {
	m.onChange = fn
}

// Selected returns the current method.
func (m *MethodSelector) Selected() domain.Method {
	return m.selected
}

// SetSelected selects method. Values outside the supported set are ignored.
func (m *MethodSelector) SetSelected(method domain.Method) {
	if !method.Valid() {
		return
	}
	m.selector.SetSelected(method.String())
}

// Options returns the values offered by the drop-down.
func (m *MethodSelector) Options() []domain.Method {
	out := make([]domain.Method, 0, len(m.selector.Options))
	for _, name := range m.selector.Options {
		out = append(out, domain.Method(name))
	}
	return out
}

// CreateRenderer implements fyne.Widget.
func (m *MethodSelector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.selector)
}

// MinSize keeps every method name readable without truncation.
func (m *MethodSelector) MinSize() fyne.Size {
	min := m.BaseWidget.MinSize()
	if min.Width < 110 {
		min.Width = 110
	}
	return min
}
