package runtime

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/odvcencio/sectionlist/internal/logging"
	"github.com/odvcencio/sectionlist/state"
)

// QueueScheduler queues signal callbacks and wakes the loop once per
// batch, so section data set from other goroutines is applied between
// frames.
type QueueScheduler struct {
	queue   *state.Queue
	post    func(Message) bool
	pending atomic.Bool
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{queue: queue, post: post}
}

// Schedule enqueues fn and posts a flush unless one is already pending.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.post == nil || !s.pending.CompareAndSwap(false, true) {
		return
	}
	if !s.post(QueueFlushMsg{}) {
		s.pending.Store(false)
	}
}

// flush runs the queued callbacks and re-arms the flush post.
func (s *QueueScheduler) flush() int {
	s.pending.Store(false)
	if s.queue.Len() == 0 {
		return 0
	}
	n := s.queue.Flush()
	logging.Logger().Debug("applied queued updates", zap.Int("count", n))
	return n
}
