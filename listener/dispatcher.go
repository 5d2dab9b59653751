package listener

import "sync"

// Dispatcher is an in-process EventSource. It keeps an ordered list of
// handlers per event name and invokes them synchronously from Dispatch. A nil
// *Dispatcher refuses registrations and dispatches nothing.
type Dispatcher struct {
	mux      sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
	}
}

func (d *Dispatcher) AddEventListener(name string, h Handler) error {
	if d == nil {
		return ErrNilSource
	}
	if name == "" {
		return ErrEmptyEventName{}
	}
	if h == nil {
		return ErrNilHandler
	}

	d.mux.Lock()
	defer d.mux.Unlock()

	for _, existing := range d.handlers[name] {
		if existing == h {
			return nil
		}
	}
	d.handlers[name] = append(d.handlers[name], h)
	return nil
}

func (d *Dispatcher) RemoveEventListener(name string, h Handler) {
	if d == nil {
		return
	}

	d.mux.Lock()
	defer d.mux.Unlock()

	handlers := d.handlers[name]
	for i, existing := range handlers {
		if existing != h {
			continue
		}

		// copy rather than reslice in place so a snapshot taken by an
		// in-flight Dispatch is left untouched
		next := make([]Handler, 0, len(handlers)-1)
		next = append(next, handlers[:i]...)
		next = append(next, handlers[i+1:]...)
		if len(next) == 0 {
			delete(d.handlers, name)
		} else {
			d.handlers[name] = next
		}
		return
	}
}

// Dispatch invokes every handler registered for ev in registration order on
// the calling goroutine and returns how many were invoked. Handlers may add
// or remove listeners while being dispatched; changes apply to the next
// Dispatch.
func (d *Dispatcher) Dispatch(ev Event) int {
	if d == nil {
		return 0
	}

	d.mux.RLock()
	handlers := d.handlers[ev.EventName()]
	d.mux.RUnlock()

	for _, h := range handlers {
		h.HandleEvent(ev)
	}
	return len(handlers)
}

func (d *Dispatcher) ListenerCount(name string) int {
	if d == nil {
		return 0
	}

	d.mux.RLock()
	defer d.mux.RUnlock()

	return len(d.handlers[name])
}
