package components

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/edrd/dudu/internal/action"
)

// AsyncButton is a button that runs an asynchronous action and stays disabled
// until the action returns. A spinner is shown on top of the button while the
// action is pending. The button becomes enabled again even when the action
// fails or panics.
type AsyncButton struct {
	widget.BaseWidget

	button   *widget.Button
	activity *widget.Activity
	guard    *action.Guard

	onComplete func(err error)
}

// NewAsyncButton creates an enabled button labelled label that runs fn on tap.
func NewAsyncButton(label string, fn action.Func) *AsyncButton {
	b := &AsyncButton{
		guard:    action.NewGuard(fn),
		activity: widget.NewActivity(),
	}
	b.button = widget.NewButton(label, b.Trigger)
	b.button.Importance = widget.HighImportance
	b.activity.Hide()

	// The queued update shows the guard's state when it runs, not the value
	// notified, so a late update never re-enables a button whose next run
	// has already started.
	b.guard.SetOnStateChange(func(bool) {
		fyne.Do(func() { b.showPending(b.guard.Pending()) })
	})
	b.guard.SetOnComplete(func(err error) {
		if b.onComplete != nil {
			b.onComplete(err)
		}
	})

	b.ExtendBaseWidget(b)
	return b
}

// SetOnComplete sets a callback receiving the result of every run.
// It is called off the UI goroutine.
func (b *AsyncButton) SetOnComplete(fn func(err error)) {
	b.onComplete = fn
}

// Trigger starts the action as if the button had been tapped.
// It does nothing while a previous run is pending.
func (b *AsyncButton) Trigger() {
	b.guard.Start(context.Background())
}

// Pending reports whether the action is running.
func (b *AsyncButton) Pending() bool {
	return b.guard.Pending()
}

// Disabled reports whether the button currently refuses taps.
func (b *AsyncButton) Disabled() bool {
	return b.button.Disabled()
}

func (b *AsyncButton) showPending(pending bool) {
	if pending {
		b.button.Disable()
		b.activity.Show()
		b.activity.Start()
		return
	}
	b.activity.Stop()
	b.activity.Hide()
	b.button.Enable()
}

// CreateRenderer implements fyne.Widget.
func (b *AsyncButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(
		b.button,
		container.NewCenter(b.activity),
	))
}
