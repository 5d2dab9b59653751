package listener

import (
	"io"
	"log/slog"
)

// SubscriptionOptions configures a Subscription. Window is the source used
// when Use is called without an explicit target.
type SubscriptionOptions struct {
	Window EventSource
	Logger *slog.Logger
}

func NewDefaultSubscriptionOptions() SubscriptionOptions {
	return SubscriptionOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewSubscription returns an unregistered Subscription.
func NewSubscription(opts SubscriptionOptions) *Subscription {
	if opts.Logger == nil {
		opts.Logger = NewDefaultSubscriptionOptions().Logger
	}

	s := &Subscription{opts: opts}
	s.trampoline = &trampoline{sub: s}
	return s
}

// Subscription binds one callback to one (source, event name) pair for the
// lifetime of the view that owns it. The view calls Use on every render; the
// source only ever sees a single trampoline handler, so swapping the callback
// never re-registers. A Subscription is not safe for concurrent use: it is
// driven from the same loop that dispatches its events.
type Subscription struct {
	opts SubscriptionOptions

	callback   Callback
	trampoline *trampoline

	// bound is the most recent (target, name) passed to Use. active is what
	// the trampoline is currently registered with, if registered is set.
	boundTarget EventSource
	boundName   string
	bound       bool

	activeTarget EventSource
	activeName   string
	registered   bool

	inactive bool
}

// trampoline is the identity-stable handler registered with sources.
type trampoline struct {
	sub *Subscription
}

func (t *trampoline) HandleEvent(ev Event) {
	if cb := t.sub.callback; cb != nil {
		cb(ev)
	}
}

// Use stores cb as the logic to run for events and makes sure the trampoline
// is registered for name on target. Without a target the configured Window
// is used; an explicit nil target disables the subscription.
func (s *Subscription) Use(name string, cb Callback, target ...EventSource) {
	s.callback = cb

	t := s.opts.Window
	if len(target) > 0 {
		t = target[0]
	}
	s.boundTarget, s.boundName, s.bound = t, name, true

	if s.inactive {
		return
	}
	if s.registered && s.activeTarget == t && s.activeName == name {
		return
	}

	s.unregister()
	s.register()
}

// Activate re-registers the last binding after Deactivate.
func (s *Subscription) Activate() {
	s.inactive = false
	if s.registered || !s.bound {
		return
	}
	s.register()
}

// Deactivate unregisters the trampoline but remembers the binding so that
// Activate can restore it. Calls to Use while inactive only update the
// binding.
func (s *Subscription) Deactivate() {
	s.inactive = true
	s.unregister()
}

// Close tears the subscription down and forgets the binding. It is safe to
// call more than once. A later Use starts a new registration.
func (s *Subscription) Close() error {
	s.inactive = false
	s.unregister()
	s.callback = nil
	s.bound = false
	return nil
}

func (s *Subscription) Registered() bool {
	return s.registered
}

func (s *Subscription) register() {
	if s.boundTarget == nil {
		s.opts.Logger.Debug("no event source, skipping subscription", "event", s.boundName)
		return
	}

	if err := s.boundTarget.AddEventListener(s.boundName, s.trampoline); err != nil {
		s.opts.Logger.Warn("subscribe failed", "event", s.boundName, "err", err)
		return
	}

	s.activeTarget, s.activeName, s.registered = s.boundTarget, s.boundName, true
	s.opts.Logger.Debug("subscribed", "event", s.activeName)
}

func (s *Subscription) unregister() {
	if !s.registered {
		return
	}

	s.activeTarget.RemoveEventListener(s.activeName, s.trampoline)
	s.opts.Logger.Debug("unsubscribed", "event", s.activeName)

	s.activeTarget, s.activeName, s.registered = nil, "", false
}

var _ io.Closer = (*Subscription)(nil)
