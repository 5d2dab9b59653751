package pointer

import (
	"fmt"

	"github.com/meatflavourdev/useEventListener/listener"
)

// MouseMove is the event name dispatched for every pointer motion report.
const MouseMove = "mousemove"

// RootContainer is the lookup key of the container views are mounted into.
const RootContainer = "root"

// MouseEvent is the payload of a MouseMove event. Coordinates are terminal
// cells relative to the top left corner of the screen.
type MouseEvent struct {
	ClientX, ClientY int
}

func (MouseEvent) EventName() string { return MouseMove }

// Coords is the last observed pointer position.
type Coords struct {
	X, Y int
}

func (c Coords) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

type Display interface {
	Init() error
	Close() error

	// Mount attaches v to the container named id and renders it.
	Mount(id string, v *View) error
	Window() listener.EventSource

	ErrCh() chan error
}
