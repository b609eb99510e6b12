package debounce

import (
	"context"
	"time"
)

// Debounce calls fn once the events emitted with Emit have been quiet for
// the configured delay. Every Emit restarts the delay.
type Debounce struct {
	fn      func()
	delay   time.Duration
	pending chan struct{}
}

func NewDebounce(fn func(), delay time.Duration) *Debounce {
	return &Debounce{
		fn:      fn,
		delay:   delay,
		pending: make(chan struct{}, 1),
	}
}

// Emit schedules a call. It never blocks.
func (d *Debounce) Emit() {
	select {
	case d.pending <- struct{}{}:
	default:
	}
}

// Run processes emitted events until ctx is done. A call still waiting for
// its delay when ctx is done is dropped.
func (d *Debounce) Run(ctx context.Context) {
	timer := time.NewTimer(d.delay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case <-d.pending:
			timer.Reset(d.delay)

		case <-timer.C:
			d.fn()
		}
	}
}
