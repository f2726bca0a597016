package request

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/edrd/dudu/internal/domain"
)

func TestNewMethodSelector_Defaults(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	m := NewMethodSelector()

	assert.Equal(t, domain.MethodGet, m.Selected())
	assert.Equal(t, "GET", m.selector.Selected)
}

func TestMethodSelector_OffersExactlySupportedMethods(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	m := NewMethodSelector()

	assert.Equal(t, domain.Methods(), m.Options())
	for _, opt := range m.Options() {
		assert.True(t, opt.Valid(), "offered value %q must be a supported method", opt)
	}
}

func TestMethodSelector_DeterministicInitialValue(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	for i := 0; i < 5; i++ {
		assert.Equal(t, domain.DefaultMethod, NewMethodSelector().Selected())
	}
}

func TestMethodSelector_SelectNotifiesOwner(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	m := NewMethodSelector()
	var got []domain.Method
	m.SetOnChanged(func(method domain.Method) {
		got = append(got, method)
	})

	m.SetSelected(domain.MethodHead)
	m.SetSelected(domain.MethodHead)
	m.SetSelected(domain.MethodPost)

	assert.Equal(t, []domain.Method{domain.MethodHead, domain.MethodHead, domain.MethodPost}, got,
		"every pick is reported, including the current value")
	assert.Equal(t, domain.MethodPost, m.Selected())
}

func TestMethodSelector_IgnoresUnknownValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	m := NewMethodSelector()
	called := false
	m.SetOnChanged(func(domain.Method) { called = true })

	m.SetSelected(domain.Method("OPTIONS"))
	m.selector.SetSelected("CONNECT")

	assert.False(t, called)
	assert.Equal(t, domain.MethodGet, m.Selected())
}
