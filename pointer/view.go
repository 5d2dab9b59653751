package pointer

import (
	"io"
	"log/slog"

	"github.com/meatflavourdev/useEventListener/listener"
)

type ViewOptions struct {
	Logger *slog.Logger

	// OnChange is called after every coordinate update, from the goroutine
	// that dispatched the event.
	OnChange func(Coords)
}

// NewView returns a view showing (0, 0). It does not listen for events until
// Mount is called.
func NewView(opts ViewOptions) *View {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &View{
		opts: opts,
		sub:  listener.NewSubscription(listener.SubscriptionOptions{Logger: opts.Logger}),
	}
}

// View tracks the pointer position reported by a window event source and
// renders it as a single line of text.
type View struct {
	opts ViewOptions

	coords Coords
	sub    *listener.Subscription

	// invalidate is set by the display the view is mounted on.
	invalidate func()
}

// Mount subscribes the view to MouseMove events on window. Mounting again
// with the same window keeps the existing registration.
func (v *View) Mount(window listener.EventSource) {
	v.sub.Use(MouseMove, v.handleMove, window)
}

// Unmount detaches the view from its window.
func (v *View) Unmount() error {
	return v.sub.Close()
}

func (v *View) Coords() Coords {
	return v.coords
}

func (v *View) Text() string {
	return "The mouse position is " + v.coords.String()
}

func (v *View) setInvalidator(fn func()) {
	v.invalidate = fn
}

func (v *View) handleMove(ev listener.Event) {
	move, ok := ev.(MouseEvent)
	if !ok {
		panic(listener.NewErrUnexpectedEvent(MouseMove, ev))
	}

	v.coords = Coords{X: move.ClientX, Y: move.ClientY}
	if v.opts.OnChange != nil {
		v.opts.OnChange(v.coords)
	}
	if v.invalidate != nil {
		v.invalidate()
	}
}
