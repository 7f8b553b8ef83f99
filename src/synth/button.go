package synth

import (
	"context"
	"log"
)

// ----- Button ----- //

// Button exposes the two edges of a physical momentary switch. Both
// calls block until the edge arrives or ctx is cancelled.
type Button interface {
	WaitForPress(ctx context.Context) error
	WaitForRelease(ctx context.Context) error
}

// RunButton emits msg once per press, then waits for the release edge
// before accepting the next press. Requiring the release is the
// debounce: a bouncing contact can't retrigger while we're parked on
// the other edge.
func RunButton(ctx context.Context, q *Queue, b Button, msg Message) error {
	for {
		if err := b.WaitForPress(ctx); err != nil {
			return err
		}
		log.Printf("button: %v", msg)
		if !q.TrySend(msg) {
			log.Printf("control queue full, dropped %v", msg)
		}
		if err := b.WaitForRelease(ctx); err != nil {
			return err
		}
	}
}
