package runtime

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Message is an event flowing into the app loop.
type Message interface {
	isMessage()
}

// KeyMsg carries a terminal key event.
type KeyMsg struct {
	Event *tcell.EventKey
}

func (KeyMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// TickMsg is sent on each frame tick.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg asks the loop to apply queued state changes.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// QuitMsg stops the loop.
type QuitMsg struct{}

func (QuitMsg) isMessage() {}
