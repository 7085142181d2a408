package inflight

import (
	"context"
	"sync"
	"time"
)

// Counter tracks the number of in-flight operations and signals waiters when
// that number reaches zero.
//
// The zero-value Counter is ready to use. Counters are shared by pointer:
// every holder of the same *Counter sees the same count, and a [Ticket] keeps
// its counter reachable for as long as the ticket is alive. A Counter must
// not be copied after first use.
//
// All methods are safe for concurrent use by any number of goroutines.
type Counter struct {
	mu    sync.Mutex
	count int

	// zero is closed whenever count is zero. Each transition from zero to one
	// replaces it with a fresh open channel, so a channel handed out by Zero
	// reports exactly one drain event. It stays nil until the counter is first
	// incremented or first observed, whichever comes sooner.
	zero chan struct{}
}

// New creates a Counter with a count of zero.
//
// It exists for call sites that share the counter by pointer from the start;
// declaring a Counter variable works just as well.
func New() *Counter {
	return new(Counter)
}

// Increment adds one to the count of in-flight operations.
//
// Prefer [Counter.Ticket], which pairs the increment with a release
// obligation that fires on every exit path. Callers of Increment must
// themselves guarantee exactly one matching [Counter.Decrement].
func (c *Counter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if c.count == 1 {
		// The previous zero channel (if any) is closed and has served its
		// purpose; waiters from the previous drain cycle keep their closed
		// channel, and future observers get this fresh one.
		c.zero = make(chan struct{})
	}
}

// Decrement subtracts one from the count of in-flight operations. When the
// count reaches zero, every goroutine blocked in a wait is released.
//
// Decrement panics if the count is already zero. An unmatched Decrement is a
// programming error, and wrapping around to a negative count would leave
// future waiters blocked forever, so it fails loudly instead.
func (c *Counter) Decrement() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		panic("inflight: negative counter")
	}
	c.count--
	if c.count == 0 {
		// Closing the channel wakes every current waiter at once. A closed
		// channel also never blocks, so waiters that arrive between now and
		// the next Increment pass straight through.
		close(c.zero)
	}
}

// Count returns the number of operations currently in flight.
//
// The value is a snapshot: by the time the caller looks at it, concurrent
// tickets may have been taken or released. It is reliable only in quiescent
// states, such as after a wait has reported a drain and before new work is
// dispatched.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Zero returns a channel that is closed when the count reaches zero. If the
// count is already zero, the returned channel is already closed and receiving
// from it does not block.
//
// The channel reflects the drain of the operations outstanding as of the
// call. Tickets taken afterwards belong to a later cycle: call Zero again to
// observe it. This makes the channel safe to use in a select alongside
// cancellation or deadline channels:
//
//	select {
//	case <-counter.Zero():
//		// drained
//	case <-ctx.Done():
//		// gave up
//	}
func (c *Counter) Zero() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.zero == nil {
		// Never incremented, so the drain already happened vacuously.
		c.zero = make(chan struct{})
		close(c.zero)
	}
	return c.zero
}

// Wait blocks until the count reaches zero. If the count is already zero, it
// returns immediately.
//
// Wait may be called from any number of goroutines concurrently; a single
// drain releases all of them. It is also repeatable: after the counter is
// incremented again, a subsequent Wait blocks again.
func (c *Counter) Wait() {
	<-c.Zero()
}

// WaitTimeout blocks until the count reaches zero or the timeout elapses,
// whichever comes first. It reports whether zero was reached.
//
// A counter that is already at zero reports true regardless of the timeout,
// including a zero or negative one, which makes WaitTimeout(0) a non-blocking
// drain check. A false result changes nothing: the count is untouched and
// other waiters are undisturbed.
func (c *Counter) WaitTimeout(d time.Duration) bool {
	zero := c.Zero()

	// Checking the drain signal before arming the timer keeps the result
	// deterministic when both would be ready, rather than leaving it to
	// select's random choice.
	select {
	case <-zero:
		return true
	default:
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-zero:
		return true
	case <-timer.C:
		return false
	}
}

// WaitContext blocks until the count reaches zero or the context is done. It
// returns nil on a drain and the context's error otherwise.
//
// As with [Counter.WaitTimeout], a counter already at zero reports success
// even if the context has already been cancelled.
func (c *Counter) WaitContext(ctx context.Context) error {
	zero := c.Zero()

	select {
	case <-zero:
		return nil
	default:
	}

	select {
	case <-zero:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
