package runtime

// QueueFlushPolicy configures when the app applies queued state changes.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes on any message or tick.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage flushes on messages except TickMsg.
	FlushOnMessage
	// FlushOnTick flushes only on TickMsg.
	FlushOnTick
	// FlushManual flushes only on QueueFlushMsg.
	FlushManual
)

func shouldFlushQueue(policy QueueFlushPolicy, msg Message) bool {
	switch msg.(type) {
	case QueueFlushMsg:
		return true
	case TickMsg:
		return policy == FlushOnTick || policy == FlushOnMessageAndTick
	default:
		return policy == FlushOnMessage || policy == FlushOnMessageAndTick
	}
}
