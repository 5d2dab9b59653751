package listener

import (
	"errors"
	"fmt"
)

// ErrNilHandler is returned when a nil handler is registered with a source.
var ErrNilHandler = errors.New("nil handler")

// ErrNilSource is returned when registering with a nil *Dispatcher.
var ErrNilSource = errors.New("nil event source")

type ErrEmptyEventName struct{}

func (e ErrEmptyEventName) Error() string { return "event name must not be empty" }

type ErrUnexpectedEvent struct {
	want string
	got  Event
}

func (e ErrUnexpectedEvent) Error() string {
	return fmt.Sprintf("expected %s event, got %T", e.want, e.got)
}

// NewErrUnexpectedEvent is used by callbacks that receive a payload of the
// wrong type for the event they were registered for.
func NewErrUnexpectedEvent(want string, got Event) error {
	return ErrUnexpectedEvent{want: want, got: got}
}
