package request

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/edrd/dudu/internal/domain"
	"github.com/edrd/dudu/internal/logging"
	"github.com/edrd/dudu/internal/model"
)

func TestRequestPanel_MethodSelectionUpdatesState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewRequestState()
	p := NewRequestPanel(state, func(context.Context) error { return nil }, logging.NewNopLogger())

	p.methodSelector.SetSelected(domain.MethodPatch)

	assert.Equal(t, domain.MethodPatch, state.CurrentMethod())
}

func TestRequestPanel_StateChangeUpdatesSelector(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewRequestState()
	p := NewRequestPanel(state, func(context.Context) error { return nil }, logging.NewNopLogger())

	_ = state.SetMethod(domain.MethodDelete)

	assert.Eventually(t, func() bool {
		return p.methodSelector.Selected() == domain.MethodDelete
	}, time.Second, 5*time.Millisecond)
}

func TestRequestPanel_URLEntryBoundToState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewRequestState()
	p := NewRequestPanel(state, func(context.Context) error { return nil }, logging.NewNopLogger())
	w := test.NewWindow(p)
	defer w.Close()

	assert.Eventually(t, func() bool {
		return p.urlEntry.Text == model.DefaultURL
	}, time.Second, 5*time.Millisecond)

	p.urlEntry.SetText("")
	test.Type(p.urlEntry, "http://localhost:8080/health")

	assert.Eventually(t, func() bool {
		return state.Snapshot().URL == "http://localhost:8080/health"
	}, time.Second, 5*time.Millisecond)
}

func TestRequestPanel_ExecuteRunsOnce(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	release := make(chan struct{})
	var calls atomic.Int32
	state := model.NewRequestState()
	p := NewRequestPanel(state, func(context.Context) error {
		calls.Add(1)
		<-release
		return nil
	}, logging.NewNopLogger())

	p.TriggerExecute()
	assert.Eventually(t, p.Executing, time.Second, 5*time.Millisecond)

	p.TriggerExecute()
	p.urlEntry.OnSubmitted(p.urlEntry.Text)

	close(release)
	assert.Eventually(t, func() bool { return !p.Executing() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
