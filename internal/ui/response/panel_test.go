package response

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/edrd/dudu/internal/domain"
	"github.com/edrd/dudu/internal/model"
)

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	assert.Eventually(t, cond, time.Second, 5*time.Millisecond, msg)
}

func TestResponsePanel_ContentShownVerbatim(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	p := NewResponsePanel(state)

	body := `{"data":{"id":2}}`
	state.Complete(&domain.Response{StatusCode: 200, Status: "200 OK", Body: body})

	eventually(t, func() bool { return p.DisplayedText() == body }, "body should be displayed verbatim")
	assert.False(t, p.Bold(), "content uses normal emphasis")
}

func TestResponsePanel_NoContentShownBold(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	p := NewResponsePanel(state)

	state.Complete(&domain.Response{StatusCode: 200, Status: "200 OK", Body: ""})

	eventually(t, func() bool { return p.DisplayedText() == "<no content>" }, "no content placeholder")
	eventually(t, p.Bold, "no content is emphasised")

	state.Complete(&domain.Response{StatusCode: 200, Status: "200 OK", Body: "back"})
	eventually(t, func() bool { return !p.Bold() }, "emphasis removed for content")
}

func TestResponsePanel_RefreshDoesNotChangeState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	p := NewResponsePanel(state)
	w := test.NewWindow(p)
	defer w.Close()

	state.Complete(&domain.Response{StatusCode: 200, Status: "200 OK", Body: "stable"})
	eventually(t, func() bool { return p.DisplayedText() == "stable" }, "initial render")

	before := state.Body()
	for i := 0; i < 3; i++ {
		p.Refresh()
		w.Content().Refresh()
	}

	assert.Equal(t, before, state.Body())
	assert.Equal(t, "stable", p.DisplayedText())
}

func TestResponsePanel_LoadingBar(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	p := NewResponsePanel(state)

	state.SetLoading(true)
	eventually(t, p.loadingBar.Visible, "loading bar shown while loading")

	state.SetLoading(false)
	eventually(t, func() bool { return !p.loadingBar.Visible() }, "loading bar hidden after completion")
}

func TestReadOnlyEntry_RejectsTyping(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	e := NewReadOnlyEntry()
	e.SetText("fixed")
	w := test.NewWindow(e)
	defer w.Close()

	test.Type(e, "abc")

	assert.Equal(t, "fixed", e.Text)
}
