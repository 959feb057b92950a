package runtime

import (
	"testing"

	"github.com/odvcencio/sectionlist/state"
)

func countingPost(posted *int) func(Message) bool {
	return func(msg Message) bool {
		if _, ok := msg.(QueueFlushMsg); ok {
			*posted++
			return true
		}
		return false
	}
}

func TestQueueSchedulerPostsFlush(t *testing.T) {
	posted := 0
	scheduler := NewQueueScheduler(state.NewQueue(), countingPost(&posted))
	scheduler.Schedule(func() {})
	if posted != 1 {
		t.Fatalf("flush posts = %d, want 1", posted)
	}
}

func TestQueueSchedulerCoalescesPosts(t *testing.T) {
	posted := 0
	calls := 0
	scheduler := NewQueueScheduler(nil, countingPost(&posted))

	scheduler.Schedule(func() { calls++ })
	scheduler.Schedule(func() { calls++ })
	if posted != 1 {
		t.Fatalf("flush posts = %d, want 1", posted)
	}
	if ran := scheduler.flush(); ran != 2 || calls != 2 {
		t.Fatalf("flush ran %d callbacks, calls = %d, want 2", ran, calls)
	}
	scheduler.Schedule(func() {})
	if posted != 2 {
		t.Fatalf("flush posts after flush = %d, want 2", posted)
	}
}

func TestQueueSchedulerRepostsOnFailedSend(t *testing.T) {
	attempts := 0
	scheduler := NewQueueScheduler(nil, func(Message) bool {
		attempts++
		return false
	})
	scheduler.Schedule(func() {})
	scheduler.Schedule(func() {})
	if attempts != 2 {
		t.Fatalf("post attempts = %d, want 2", attempts)
	}
}

func TestQueueSchedulerDrivesSignals(t *testing.T) {
	posted := 0
	scheduler := NewQueueScheduler(nil, countingPost(&posted))
	sig := state.NewSignal(0)
	seen := 0
	sig.SubscribeWithScheduler(scheduler, func() { seen = sig.Get() })

	sig.Set(3)
	if seen != 0 {
		t.Fatalf("listener ran before flush")
	}
	scheduler.flush()
	if seen != 3 {
		t.Fatalf("seen = %d, want 3", seen)
	}
}

func TestQueueSchedulerEmptyFlush(t *testing.T) {
	posted := 0
	scheduler := NewQueueScheduler(nil, countingPost(&posted))
	if ran := scheduler.flush(); ran != 0 {
		t.Fatalf("empty flush ran %d callbacks", ran)
	}
	scheduler.Schedule(func() {})
	if posted != 1 {
		t.Fatalf("flush posts = %d, want 1", posted)
	}
}
