package inflight

import "sync"

// Ticket creates a [Ticket] tracked by this counter.
//
// The count is incremented before the ticket is returned, so a concurrent
// waiter can never observe the work as dispatched-but-uncounted. The ticket
// holds its own reference to the counter and may outlive the scope that
// created it: hand it to a goroutine, a pool task, or a callback, and release
// it there.
func (c *Counter) Ticket() *Ticket {
	c.Increment()
	return &Ticket{counter: c}
}

// A Ticket represents one in-flight operation and the obligation to report
// its completion. Tickets are created with [Counter.Ticket] and released with
// [Ticket.Done].
//
// A Ticket is owned by whichever goroutine currently holds it; passing the
// pointer transfers the release obligation. It must not be copied.
type Ticket struct {
	counter *Counter

	// done guards the decrement. Without it, a Done in both a defer and an
	// explicit cleanup path would decrement twice and corrupt the count.
	done sync.Once
}

// Done releases the ticket, decrementing the counter exactly once.
//
// Done is safe to call multiple times; calls after the first are no-ops.
// The usual pattern defers it immediately after the work begins:
//
//	ticket := counter.Ticket()
//	go func() {
//		defer ticket.Done()
//		// perform the work
//	}()
//
// Because the release runs in a defer, it fires on every exit path,
// including a panic unwinding through the worker.
func (t *Ticket) Done() {
	t.done.Do(t.counter.Decrement)
}
