// Package lockout tracks failed login attempts per client key over a sliding
// window. State lives in process memory only and is lost on restart; it is a
// brake on online guessing, not a security boundary.
package lockout

import (
	"sync"
	"time"
)

// Defaults for the login lockout.
const (
	DefaultThreshold  = 5
	DefaultWindow     = 15 * time.Minute
	DefaultMaxEntries = 10_000
)

// Config controls the limiter.
type Config struct {
	// Threshold is the number of failures inside Window that blocks a key
	Threshold int
	// Window is the sliding window failures are counted over
	Window time.Duration
	// MaxEntries caps the number of tracked keys
	MaxEntries int
}

// Result is the view of one key after an operation.
type Result struct {
	// Allowed is false once the key has Threshold failures inside the window
	Allowed bool
	// Remaining is how many more failures the key may make before blocking
	Remaining int
	// RetryAfter is the number of whole seconds until the oldest failure
	// leaves the window. Zero when Allowed.
	RetryAfter int
}

// Limiter is a sliding-window failure counter. All operations take a single
// mutex, so the prune-count-append sequence for a key is linearizable and
// concurrent failures are never lost.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	now     func() time.Time
	entries map[string][]time.Time
}

// Option customises a Limiter.
type Option func(*Limiter)

// WithClock sets the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a limiter. Zero config fields take the defaults.
func New(cfg Config, opts ...Option) *Limiter {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}

	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the effective configuration.
func (l *Limiter) Config() Config { return l.cfg }

// Check prunes key's expired failures and reports whether another attempt
// is allowed.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	attempts := l.pruneLocked(key, now)
	return l.resultLocked(attempts, now)
}

// RecordFailure appends a failure for key, creating the entry on first use,
// and returns the resulting view.
func (l *Limiter) RecordFailure(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	attempts := l.pruneLocked(key, now)
	if attempts == nil {
		l.makeRoomLocked(now)
	}

	attempts = append(attempts, now)
	l.entries[key] = attempts
	return l.resultLocked(attempts, now)
}

// Acquire reserves an attempt for key. Under one lock it prunes, refuses
// without recording when key is already at Threshold, and otherwise records
// the attempt as a failure up front. Callers that go on to succeed release
// the reservation with Clear; a failed attempt needs no further call.
//
// Concurrent callers therefore cannot all pass the threshold check before
// any of them records: at most Threshold attempts per window get through.
func (l *Limiter) Acquire(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	attempts := l.pruneLocked(key, now)
	if res := l.resultLocked(attempts, now); !res.Allowed {
		return res
	}
	if attempts == nil {
		l.makeRoomLocked(now)
	}

	attempts = append(attempts, now)
	l.entries[key] = attempts

	// The attempt itself is allowed even when it fills the last slot.
	return Result{Allowed: true, Remaining: l.cfg.Threshold - len(attempts)}
}

// Clear forgets key entirely.
func (l *Limiter) Clear(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
}

// Sweep drops every key with no failure inside the window and returns how
// many were removed.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sweepLocked(l.now())
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Attempts returns the number of failures for key currently inside the window.
func (l *Limiter) Attempts(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.pruneLocked(key, l.now()))
}

// pruneLocked drops failures at or beyond the window edge and deletes the
// key when none remain.
func (l *Limiter) pruneLocked(key string, now time.Time) []time.Time {
	attempts, ok := l.entries[key]
	if !ok {
		return nil
	}

	// Timestamps are appended in order, so the live ones are a suffix.
	i := 0
	for i < len(attempts) && now.Sub(attempts[i]) >= l.cfg.Window {
		i++
	}
	if i == len(attempts) {
		delete(l.entries, key)
		return nil
	}
	if i > 0 {
		attempts = append(attempts[:0], attempts[i:]...)
		l.entries[key] = attempts
	}
	return attempts
}

func (l *Limiter) resultLocked(attempts []time.Time, now time.Time) Result {
	count := len(attempts)
	if count < l.cfg.Threshold {
		return Result{Allowed: true, Remaining: l.cfg.Threshold - count}
	}

	left := l.cfg.Window - now.Sub(attempts[0])
	return Result{
		Allowed:    false,
		Remaining:  0,
		RetryAfter: ceilSeconds(left),
	}
}

func (l *Limiter) sweepLocked(now time.Time) int {
	removed := 0
	for key, attempts := range l.entries {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) >= l.cfg.Window {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// makeRoomLocked keeps the map under MaxEntries before a new key is
// inserted: stale keys go first, then the key whose latest failure is
// oldest.
func (l *Limiter) makeRoomLocked(now time.Time) {
	if len(l.entries) < l.cfg.MaxEntries {
		return
	}
	l.sweepLocked(now)

	for len(l.entries) >= l.cfg.MaxEntries {
		var (
			victim string
			oldest time.Time
			found  bool
		)
		for key, attempts := range l.entries {
			last := attempts[len(attempts)-1]
			if !found || last.Before(oldest) {
				victim, oldest, found = key, last, true
			}
		}
		if !found {
			return
		}
		delete(l.entries, victim)
	}
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
