// Package inflight provides a thread-safe counter of in-flight operations
// that lets any number of observers block until every tracked operation has
// finished, optionally with a timeout or a context deadline.
//
// # Why This Package Exists
//
// The standard sync.WaitGroup is the right tool when the code that spawns
// work is also the code that waits for it, and when Add/Done pairing is easy
// to see at a glance. It becomes awkward when work is dispatched through
// layers that cannot return a join handle - goroutine pools, callback-driven
// servers, fire-and-forget message consumers. In those settings the unit of
// work travels away from its spawner, and what you want is a token that
// travels with it.
//
// This package provides exactly that token. Calling [Counter.Ticket]
// increments the counter before the ticket is visible to anyone, so there is
// no window in which work has been dispatched but a concurrent waiter could
// miss it. The ticket rides along with the work, and releasing it with
// [Ticket.Done] decrements the counter exactly once no matter how many times
// or on which goroutine it is called. When the count reaches zero, every
// goroutine blocked in a wait is released together.
//
// # Usage Patterns
//
// The common shape pairs a ticket with a deferred release:
//
//	counter := inflight.New()
//	for _, task := range tasks {
//		ticket := counter.Ticket()
//		pool.Submit(func() {
//			defer ticket.Done()
//			process(task)
//		})
//	}
//	if !counter.WaitTimeout(shutdownGrace) {
//		log.Print("some tasks still running at shutdown")
//	}
//
// The deferred Done fires on every exit path, including panics unwinding
// through the worker, so the counter cannot be left stuck above zero by a
// failing task.
//
// For select-based composition, [Counter.Zero] exposes the drain signal as a
// channel:
//
//	select {
//	case <-counter.Zero():
//		// all tracked work has finished
//	case <-ctx.Done():
//		// gave up waiting
//	}
//
// # The Manual Path
//
// [Counter.Increment] and [Counter.Decrement] are exported for callers that
// cannot thread a ticket through their control flow. They are the discouraged
// path: the caller takes on the burden of pairing every Increment with
// exactly one Decrement on every exit path, which is precisely the
// bookkeeping tickets exist to eliminate. An unmatched Decrement is a contract
// violation and panics rather than corrupting the count, because a silently
// negative counter would strand every future waiter.
//
// # Design Trade-offs
//
//   - Waiting is level-triggered on "the counter reached zero", not on any
//     particular ticket. A wait returns once everything outstanding at the
//     time of the call has drained; new tickets taken after that moment are
//     the business of a later wait.
//   - The counter is reusable, not one-shot. After draining to zero it can
//     be incremented again, and waits issued from then on block again. This
//     differs from sync.WaitGroup's restriction on reuse while waiters are
//     still blocked.
//   - There is no fairness or ordering among waiters; a drain releases all
//     of them at once and the scheduler decides the rest.
//   - Counting is process-local memory. Nothing here coordinates across
//     processes or machines.
package inflight
