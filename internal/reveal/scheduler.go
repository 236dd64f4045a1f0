package reveal

import (
	"context"
	"time"
)

// Play replays a plan against the supplied clock. Events arrive on the
// returned channel in plan order; the channel is closed after the final event
// or as soon as ctx is cancelled. Cancellation stops the pending timer, so no
// event is ever delivered after teardown.
func Play(ctx context.Context, clock Clock, plan []Event) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)

		elapsed := time.Duration(0)
		for _, event := range plan {
			timer := clock.NewTimer(event.At - elapsed)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C():
			}
			elapsed = event.At

			select {
			case <-ctx.Done():
				return
			case out <- event:
			}
		}
	}()

	return out
}
