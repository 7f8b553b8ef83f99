package synth

import "sync/atomic"

// ----- Message Queue ----- //

// Queue is the bounded FIFO between control tasks and the render path.
// Senders never block: when the queue is full the newest message is
// dropped, because stalling the audio side is worse than losing a
// control change. The receive side is the render loop only.
type Queue struct {
	ch      chan Message
	dropped uint64
}

// NewQueue ...
func NewQueue(capacity int) *Queue {
	return &Queue{ch: make(chan Message, capacity)}
}

// TrySend enqueues without blocking. Returns false if the message was
// dropped because the queue is at capacity.
func (q *Queue) TrySend(m Message) bool {
	select {
	case q.ch <- m:
		return true
	default:
		atomic.AddUint64(&q.dropped, 1)
		return false
	}
}

// TryReceive dequeues without blocking. ok is false when empty.
func (q *Queue) TryReceive() (Message, bool) {
	select {
	case m := <-q.ch:
		return m, true
	default:
		return Message{}, false
	}
}

// Len reports how many messages are waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Dropped reports how many messages were discarded on overflow.
func (q *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&q.dropped)
}
