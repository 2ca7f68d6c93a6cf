package service

import (
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/folio/pkg/lockout"
	"github.com/aussiebroadwan/folio/pkg/slogx"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHousekeeping_SweepsStaleEntries(t *testing.T) {
	defer goleak.VerifyNone(t)

	var (
		mu  sync.Mutex
		now = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	limiter := lockout.New(lockout.Config{}, lockout.WithClock(clock))
	limiter.RecordFailure("198.51.100.1")
	limiter.RecordFailure("198.51.100.2")
	require.Equal(t, 2, limiter.Len())

	mu.Lock()
	now = now.Add(16 * time.Minute)
	mu.Unlock()

	hk := NewHousekeepingService(limiter, slogx.Discard(), 10*time.Millisecond)
	hk.Start()

	require.Eventually(t, func() bool { return limiter.Len() == 0 }, time.Second, 5*time.Millisecond)
	hk.Stop()
}

func TestHousekeeping_DefaultInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	hk := NewHousekeepingService(lockout.New(lockout.Config{}), slogx.Discard(), 0)
	require.Equal(t, 5*time.Minute, hk.Interval)

	hk.Start()
	hk.Stop()
}

func TestHousekeeping_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	hk := NewHousekeepingService(lockout.New(lockout.Config{}), slogx.Discard(), time.Millisecond)

	done := make(chan struct{})
	go func() {
		hk.Stop()
		hk.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a worker that was never started")
	}

	hk.Start() // no-op once stopped
	hk.Stop()
}

func TestHousekeeping_StartIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	hk := NewHousekeepingService(lockout.New(lockout.Config{}), slogx.Discard(), time.Millisecond)
	hk.Start()
	hk.Start()
	hk.Stop()
}
