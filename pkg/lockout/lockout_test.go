package lockout_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/folio/pkg/lockout"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newLimiter(cfg lockout.Config) (*lockout.Limiter, *clock) {
	c := newClock()
	return lockout.New(cfg, lockout.WithClock(c.Now)), c
}

func TestNew_Defaults(t *testing.T) {
	l := lockout.New(lockout.Config{})
	cfg := l.Config()
	require.Equal(t, 5, cfg.Threshold)
	require.Equal(t, 15*time.Minute, cfg.Window)
	require.Equal(t, 10_000, cfg.MaxEntries)
}

func TestCheck_UnknownKey(t *testing.T) {
	l, _ := newLimiter(lockout.Config{})

	res := l.Check("203.0.113.7")
	require.True(t, res.Allowed)
	require.Equal(t, 5, res.Remaining)
	require.Zero(t, res.RetryAfter)
	require.Zero(t, l.Len(), "check must not create entries")
}

func TestRecordFailure_CountsDown(t *testing.T) {
	l, c := newLimiter(lockout.Config{})
	const ip = "203.0.113.7"

	for i := 1; i <= 4; i++ {
		res := l.RecordFailure(ip)
		require.True(t, res.Allowed, "attempt %d", i)
		require.Equal(t, 5-i, res.Remaining)
		c.Advance(time.Second)
	}

	res := l.RecordFailure(ip)
	require.False(t, res.Allowed)
	require.Zero(t, res.Remaining)
	require.Positive(t, res.RetryAfter)

	require.False(t, l.Check(ip).Allowed)
}

func TestCheck_RetryAfter(t *testing.T) {
	l, c := newLimiter(lockout.Config{})
	const ip = "198.51.100.1"

	for range 5 {
		l.RecordFailure(ip)
	}

	res := l.Check(ip)
	require.False(t, res.Allowed)
	require.Equal(t, 900, res.RetryAfter)

	c.Advance(5 * time.Minute)
	require.Equal(t, 600, l.Check(ip).RetryAfter)

	// Partial seconds round up
	c.Advance(500 * time.Millisecond)
	require.Equal(t, 600, l.Check(ip).RetryAfter)

	c.Advance(10*time.Minute - 500*time.Millisecond - time.Second)
	require.Equal(t, 1, l.Check(ip).RetryAfter)
}

func TestCheck_WindowSlides(t *testing.T) {
	l, c := newLimiter(lockout.Config{})
	const ip = "198.51.100.2"

	// Failures at t=0,1,2,3,4 minutes
	for range 5 {
		l.RecordFailure(ip)
		c.Advance(time.Minute)
	}
	require.False(t, l.Check(ip).Allowed)

	// At t=15m the first failure leaves the window
	c.Advance(10 * time.Minute)
	res := l.Check(ip)
	require.True(t, res.Allowed)
	require.Equal(t, 1, res.Remaining)
	require.Equal(t, 4, l.Attempts(ip))

	// Well past the last failure the entry disappears entirely
	c.Advance(time.Hour)
	require.True(t, l.Check(ip).Allowed)
	require.Zero(t, l.Len())
}

func TestClear(t *testing.T) {
	l, _ := newLimiter(lockout.Config{})

	for range 5 {
		l.RecordFailure("a")
	}
	l.RecordFailure("b")
	require.False(t, l.Check("a").Allowed)

	l.Clear("a")
	res := l.Check("a")
	require.True(t, res.Allowed)
	require.Equal(t, 5, res.Remaining)
	require.Equal(t, 1, l.Attempts("b"), "other keys are untouched")

	// Clearing an unknown key is a no-op
	l.Clear("missing")
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newLimiter(lockout.Config{})

	for range 5 {
		l.RecordFailure("10.0.0.1")
	}
	require.False(t, l.Check("10.0.0.1").Allowed)
	require.True(t, l.Check("10.0.0.2").Allowed)
}

func TestSweep(t *testing.T) {
	l, c := newLimiter(lockout.Config{})

	l.RecordFailure("old")
	c.Advance(10 * time.Minute)
	l.RecordFailure("recent")
	c.Advance(6 * time.Minute)

	require.Equal(t, 1, l.Sweep())
	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, l.Attempts("recent"))
	require.Zero(t, l.Sweep())
}

func TestMaxEntries(t *testing.T) {
	t.Run("stale keys are swept first", func(t *testing.T) {
		l, c := newLimiter(lockout.Config{MaxEntries: 3})

		l.RecordFailure("a")
		l.RecordFailure("b")
		c.Advance(20 * time.Minute)
		l.RecordFailure("c")
		l.RecordFailure("d")

		require.Equal(t, 2, l.Len())
		require.Zero(t, l.Attempts("a"))
		require.Equal(t, 1, l.Attempts("c"))
		require.Equal(t, 1, l.Attempts("d"))
	})

	t.Run("oldest key is evicted when all are live", func(t *testing.T) {
		l, c := newLimiter(lockout.Config{MaxEntries: 3})

		for _, k := range []string{"a", "b", "c"} {
			l.RecordFailure(k)
			c.Advance(time.Second)
		}
		// Refresh "a" so "b" is now the least recently failed key
		l.RecordFailure("a")
		c.Advance(time.Second)

		l.RecordFailure("d")
		require.Equal(t, 3, l.Len())
		require.Zero(t, l.Attempts("b"))
		require.Equal(t, 2, l.Attempts("a"))
		require.Equal(t, 1, l.Attempts("c"))
		require.Equal(t, 1, l.Attempts("d"))
	})

	t.Run("existing key never triggers eviction", func(t *testing.T) {
		l, _ := newLimiter(lockout.Config{MaxEntries: 2})

		l.RecordFailure("a")
		l.RecordFailure("b")
		for range 10 {
			l.RecordFailure("a")
		}
		require.Equal(t, 2, l.Len())
	})

	t.Run("bound holds under many keys", func(t *testing.T) {
		l, _ := newLimiter(lockout.Config{MaxEntries: 100})
		for i := range 1000 {
			l.RecordFailure(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
		}
		require.Equal(t, 100, l.Len())
	})
}

func TestRecordFailure_Concurrent(t *testing.T) {
	l := lockout.New(lockout.Config{Threshold: 5, Window: time.Hour})
	const n = 200

	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			l.RecordFailure("192.0.2.1")
		})
	}
	wg.Wait()

	require.Equal(t, n, l.Attempts("192.0.2.1"), "no failure may be lost")
	require.False(t, l.Check("192.0.2.1").Allowed)
}

func TestCheckAndRecord_ConcurrentMixed(t *testing.T) {
	l := lockout.New(lockout.Config{Threshold: 5, Window: time.Hour})

	var wg sync.WaitGroup
	for i := range 50 {
		key := fmt.Sprintf("k%d", i%5)
		wg.Go(func() {
			l.Check(key)
			l.RecordFailure(key)
			l.Check(key)
		})
	}
	wg.Wait()

	for i := range 5 {
		require.Equal(t, 10, l.Attempts(fmt.Sprintf("k%d", i)))
	}
}

func TestAcquire(t *testing.T) {
	l, c := newLimiter(lockout.Config{Threshold: 3, Window: time.Minute})

	for want := 2; want >= 0; want-- {
		res := l.Acquire("k")
		require.True(t, res.Allowed)
		require.Equal(t, want, res.Remaining)
	}

	res := l.Acquire("k")
	require.False(t, res.Allowed)
	require.Equal(t, 60, res.RetryAfter)
	require.Equal(t, 3, l.Attempts("k"), "refused attempts are not recorded")

	l.Clear("k")
	require.True(t, l.Acquire("k").Allowed)

	c.Advance(time.Minute)
	require.Equal(t, 0, l.Attempts("k"))
}

func TestAcquire_ConcurrentStopsAtThreshold(t *testing.T) {
	l := lockout.New(lockout.Config{Threshold: 5, Window: time.Hour})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Go(func() {
			if l.Acquire("192.0.2.7").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	require.Equal(t, 5, allowed)
	require.Equal(t, 5, l.Attempts("192.0.2.7"))
}
