package pointer

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/meatflavourdev/useEventListener/listener"
)

const (
	minDisplayHeight = 3
	minDisplayWidth  = 10
)

type TerminalDisplayOptions struct {
	BufferSize int

	LabelHeight     int
	LabelTextOffset [2]int

	Logger *slog.Logger

	// Screen overrides the terminal screen, mostly for
	// tcell.NewSimulationScreen in tests. Init takes ownership of it.
	Screen tcell.Screen
}

func NewDefaultTerminalDisplayOptions() TerminalDisplayOptions {
	return TerminalDisplayOptions{
		BufferSize: 64,

		LabelHeight:     3,
		LabelTextOffset: [2]int{2, 1},

		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func NewTerminalDisplay(opts TerminalDisplayOptions) Display {
	defaults := NewDefaultTerminalDisplayOptions()
	if opts.BufferSize == 0 {
		opts.BufferSize = defaults.BufferSize
	}
	if opts.LabelHeight == 0 {
		opts.LabelHeight = defaults.LabelHeight
		opts.LabelTextOffset = defaults.LabelTextOffset
	}
	if opts.Logger == nil {
		opts.Logger = defaults.Logger
	}

	return &terminalDisplay{
		opts:   opts,
		window: listener.NewDispatcher(),

		eventCh: make(chan tcell.Event, opts.BufferSize),
		callCh:  make(chan func()),
		errCh:   make(chan error, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		pollCh:  make(chan struct{}),
	}
}

// terminalDisplay renders mounted views on the local terminal. Every tcell
// event and every Mount call is funnelled through runLoop, so view state is
// only ever touched from one goroutine.
type terminalDisplay struct {
	opts TerminalDisplayOptions

	window *listener.Dispatcher
	view   *View
	dirty  bool

	eventCh chan tcell.Event
	callCh  chan func()
	errCh   chan error
	stopCh  chan struct{}
	doneCh  chan struct{}
	pollCh  chan struct{}

	mux         sync.Mutex
	initialized bool
	closeOnce   sync.Once

	screen tcell.Screen
}

func (d *terminalDisplay) Init() error {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.initialized {
		return nil
	}

	screen := d.opts.Screen
	if screen == nil {
		tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("new screen: %w", err)
		}
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	d.screen = screen

	if err := d.checkScreenSize(); err != nil {
		screen.Fini()
		return err
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	d.initialized = true

	go d.pollLoop()
	go d.runLoop()

	d.opts.Logger.Info("display initialized")
	return nil
}

// Close stops the run loop, unmounts the view and restores the terminal.
func (d *terminalDisplay) Close() error {
	d.mux.Lock()
	initialized := d.initialized
	d.mux.Unlock()

	if !initialized {
		return nil
	}

	var err error
	d.closeOnce.Do(func() {
		close(d.stopCh)
		<-d.doneCh

		if d.view != nil {
			err = d.view.Unmount()
		}

		d.screen.Fini()
		<-d.pollCh
		close(d.errCh)

		d.opts.Logger.Info("display closed")
	})
	return err
}

func (d *terminalDisplay) Window() listener.EventSource {
	return d.window
}

func (d *terminalDisplay) ErrCh() chan error {
	return d.errCh
}

func (d *terminalDisplay) Mount(id string, v *View) error {
	if id != RootContainer {
		return ErrContainerNotFound{id}
	}

	return d.do(func() {
		if d.view != v {
			if d.view != nil {
				if err := d.view.Unmount(); err != nil {
					d.opts.Logger.Warn("unmount previous view", "err", err)
				}
			}

			v.setInvalidator(d.invalidate)
			d.view = v
		}

		d.opts.Logger.Debug("mounted view", "container", id)
		v.Mount(d.window)
		d.draw()
	})
}

func (d *terminalDisplay) invalidate() {
	d.dirty = true
}

// do runs fn on the run loop and waits for it to finish.
func (d *terminalDisplay) do(fn func()) error {
	d.mux.Lock()
	initialized := d.initialized
	d.mux.Unlock()

	if !initialized {
		return ErrDisplayNotInitialized{}
	}

	done := make(chan struct{})
	select {
	case d.callCh <- func() { fn(); close(done) }:
	case <-d.stopCh:
		return ErrDisplayNotInitialized{}
	}

	<-done
	return nil
}

// NOTE: tcell "takes over" the terminal and captures incoming key events and
// signals. This poller forwards them to the run loop and exits once the
// screen is finalized.
func (d *terminalDisplay) pollLoop() {
	defer close(d.pollCh)

	for {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}

		select {
		case d.eventCh <- event:
		case <-d.stopCh:
			return
		}
	}
}

func (d *terminalDisplay) runLoop() {
	defer close(d.doneCh)

	d.draw()
	for {
		select {
		case <-d.stopCh:
			return
		case fn := <-d.callCh:
			fn()
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *terminalDisplay) handleEvent(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventKey:
		if isInterrupt(event) {
			d.sendErr(ErrDisplayInterrupt{})
		}
	case *tcell.EventMouse:
		x, y := event.Position()
		d.window.Dispatch(MouseEvent{ClientX: x, ClientY: y})
	case *tcell.EventResize:
		d.screen.Sync()
		d.dirty = true
	}

	if d.dirty {
		d.draw()
	}
}

// isInterrupt matches Esc, q and Ctrl-C. Ctrl-C may arrive either as
// KeyCtrlC or as a 'c' rune with the ctrl modifier depending on the terminal.
func isInterrupt(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := event.Rune()
		return r == 'q' || (r == 'c' && event.Modifiers()&tcell.ModCtrl != 0)
	}
	return false
}

func (d *terminalDisplay) checkScreenSize() error {
	width, height := d.screen.Size()
	if width < minDisplayWidth || height < minDisplayHeight {
		return ErrDisplayTooSmall{width: width, height: height}
	}

	return nil
}

func (d *terminalDisplay) sendErr(err error) {
	select {
	case d.errCh <- err:
	default:
	}
}

func (d *terminalDisplay) draw() {
	d.dirty = false

	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()

	if d.view != nil {
		d.drawLabel(d.view.Text())
	}

	d.screen.Show()
}

func (d *terminalDisplay) drawLabel(label string) {
	style := tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack)

	width, _ := d.screen.Size()

	// draw label box
	for row := 0; row < d.opts.LabelHeight; row++ {
		for col := 0; col < width; col++ {
			d.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	x := d.opts.LabelTextOffset[0]
	y := d.opts.LabelTextOffset[1]

	i := 0
	for _, ru := range label {
		if x+i >= width {
			break
		}
		d.screen.SetContent(x+i, y, ru, nil, style)
		i += runewidth.RuneWidth(ru)
	}
}
