package status

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/edrd/dudu/internal/domain"
	"github.com/edrd/dudu/internal/model"
)

func waitForPhase(t *testing.T, s *StatusBar, want Phase) {
	t.Helper()
	assert.Eventually(t, func() bool { return s.Phase() == want }, time.Second, 5*time.Millisecond,
		"expected phase %d", want)
}

func TestStatusBar_InitiallyReady(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	s := NewStatusBar(model.NewResponseState())

	waitForPhase(t, s, PhaseReady)
	assert.Equal(t, "Ready", s.Text())
}

func TestStatusBar_Phases(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	s := NewStatusBar(state)

	state.SetLoading(true)
	waitForPhase(t, s, PhaseExecuting)

	resp := &domain.Response{StatusCode: 404, Status: "404 Not Found", Body: "missing", Size: 7}
	state.Complete(resp)
	state.SetLoading(false)
	waitForPhase(t, s, PhaseCompleted)
	assert.Equal(t, model.FormatSummary(resp), s.Text())

	state.Fail("Invalid URL: bad input")
	waitForPhase(t, s, PhaseFailed)
	assert.Equal(t, "Invalid URL: bad input", s.Text())
}

func TestStatusBar_LoadingTakesPrecedence(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	s := NewStatusBar(state)

	state.Fail("Request Failed: boom")
	waitForPhase(t, s, PhaseFailed)

	state.SetLoading(true)
	waitForPhase(t, s, PhaseExecuting)
}
