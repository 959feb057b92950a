// Package runtime runs a widget against a tcell screen.
package runtime

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/odvcencio/sectionlist/internal/logging"
	"github.com/odvcencio/sectionlist/scroll"
	"github.com/odvcencio/sectionlist/state"
)

// Widget is the root drawn by an App.
type Widget interface {
	Layout(bounds scroll.Rect)
	Render(screen tcell.Screen)
	HandleKey(ev *tcell.EventKey) bool
}

// KeyHandler sees keys before the root widget. Returning true consumes
// the key.
type KeyHandler func(app *App, ev *tcell.EventKey) bool

// AppConfig configures an App.
type AppConfig struct {
	Screen        tcell.Screen
	Root          Widget
	KeyHandler    KeyHandler
	MessageBuffer int
	TickRate      time.Duration
	StateQueue    *state.Queue
	FlushPolicy   QueueFlushPolicy
	Style         tcell.Style
}

// App runs the event loop for one root widget. The caller owns the
// screen: it must be initialized before Run and finalized after.
type App struct {
	screen      tcell.Screen
	root        Widget
	keyHandler  KeyHandler
	messages    chan Message
	tickRate    time.Duration
	scheduler   *QueueScheduler
	flushPolicy QueueFlushPolicy
	style       tcell.Style

	running bool
	dirty   bool
}

// NewApp creates an App from cfg. Without a KeyHandler, Escape and
// Ctrl-C quit, as does q when the root does not handle it.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	app := &App{
		screen:      cfg.Screen,
		root:        cfg.Root,
		keyHandler:  cfg.KeyHandler,
		messages:    make(chan Message, bufferSize),
		tickRate:    cfg.TickRate,
		flushPolicy: cfg.FlushPolicy,
		style:       cfg.Style,
	}
	if app.keyHandler == nil {
		app.keyHandler = DefaultKeyHandler
	}
	app.scheduler = NewQueueScheduler(cfg.StateQueue, app.Post)
	return app
}

// DefaultKeyHandler quits on Escape and Ctrl-C.
func DefaultKeyHandler(app *App, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.Quit()
		return true
	}
	return false
}

// StateScheduler returns a scheduler that applies signal updates on the
// loop goroutine.
func (a *App) StateScheduler() state.Scheduler {
	return a.scheduler
}

// Post sends msg to the loop without blocking. It reports whether the
// message was queued.
func (a *App) Post(msg Message) bool {
	if a == nil || msg == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		logging.Logger().Debug("dropped message", zap.String("type", messageName(msg)))
		return false
	}
}

// Quit stops the loop after the current message.
func (a *App) Quit() {
	a.Post(QuitMsg{})
}

// Run processes events until Quit or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.screen == nil {
		return errors.New("runtime: screen is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan struct{})
	defer close(done)
	go a.pollEvents(done)

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	a.running = true
	a.dirty = true
	a.render()
	for a.running {
		var msg Message
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}
		if a.update(msg) {
			a.dirty = true
		}
		if a.running && shouldFlushQueue(a.flushPolicy, msg) && a.scheduler.flush() > 0 {
			a.dirty = true
		}
		a.render()
	}
	return nil
}

func (a *App) update(msg Message) bool {
	switch m := msg.(type) {
	case QuitMsg:
		a.running = false
		return false
	case KeyMsg:
		if m.Event == nil {
			return false
		}
		if a.keyHandler(a, m.Event) {
			return true
		}
		if a.root != nil && a.root.HandleKey(m.Event) {
			return true
		}
		if m.Event.Key() == tcell.KeyRune && m.Event.Rune() == 'q' {
			a.running = false
		}
		return false
	case ResizeMsg:
		a.screen.Sync()
		return true
	}
	return false
}

func (a *App) pollEvents(done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		var msg Message
		switch e := ev.(type) {
		case *tcell.EventKey:
			msg = KeyMsg{Event: e}
		case *tcell.EventResize:
			w, h := e.Size()
			msg = ResizeMsg{Width: w, Height: h}
		default:
			continue
		}
		select {
		case a.messages <- msg:
		case <-done:
			return
		}
	}
}

func (a *App) render() {
	if !a.dirty || !a.running {
		return
	}
	a.dirty = false
	a.screen.SetStyle(a.style)
	a.screen.Clear()
	if a.root != nil {
		w, h := a.screen.Size()
		a.root.Layout(scroll.Rect{Width: w, Height: h})
		a.root.Render(a.screen)
	}
	a.screen.Show()
}

func messageName(msg Message) string {
	switch msg.(type) {
	case KeyMsg:
		return "key"
	case ResizeMsg:
		return "resize"
	case TickMsg:
		return "tick"
	case QueueFlushMsg:
		return "queue-flush"
	case QuitMsg:
		return "quit"
	default:
		return "unknown"
	}
}
