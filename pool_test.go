package inflight_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"

	"github.com/notorious-go/inflight"
)

// Goroutine pools accept work but offer no way to join on it; pairing each
// submission with a ticket adds the missing drain point.
func TestPooledWorkDrains(t *testing.T) {
	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	defer pool.Release()

	var counter inflight.Counter
	var processed atomic.Int32

	const tasks = 32
	for range tasks {
		ticket := counter.Ticket()
		err := pool.Submit(func() {
			defer ticket.Done()
			time.Sleep(time.Millisecond)
			processed.Add(1)
		})
		require.NoError(t, err)
	}

	require.True(t, counter.WaitTimeout(5*time.Second))
	require.EqualValues(t, tasks, processed.Load(),
		"a drained counter means every submitted task ran to completion")
	require.Equal(t, 0, counter.Count())
}

// A rejected submission must release its ticket on the caller's side, or the
// counter would wait for work that never ran.
func TestRejectedSubmissionReleasesTicket(t *testing.T) {
	pool, err := ants.NewPool(1)
	require.NoError(t, err)
	pool.Release()

	var counter inflight.Counter
	ticket := counter.Ticket()
	if err := pool.Submit(func() { defer ticket.Done() }); err != nil {
		ticket.Done()
	}

	require.True(t, counter.WaitTimeout(time.Second))
}
