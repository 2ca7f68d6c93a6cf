package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/folio/pkg/lockout"
)

// HousekeepingService periodically sweeps stale entries out of the login
// lockout so the map only holds clients with recent failures.
type HousekeepingService struct {
	Lockout  *lockout.Limiter
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh    chan struct{}
	doneCh    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 5 minutes.
func NewHousekeepingService(limiter *lockout.Limiter, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &HousekeepingService{
		Lockout:  limiter,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
// Calling Start again, or after Stop, does nothing.
func (s *HousekeepingService) Start() {
	s.startOnce.Do(func() {
		s.started = true
		go s.run()
		s.Logger.Info("housekeeping service started", "interval", s.Interval)
	})
}

// Stop shuts the worker down and waits for an in-progress sweep. It is safe
// to call more than once and without a prior Start.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		// Claim startOnce so a later Start cannot launch the worker.
		s.startOnce.Do(func() {})
		close(s.stopCh)
		if s.started {
			<-s.doneCh
		}
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup drops lockout keys whose failures have all aged out.
func (s *HousekeepingService) cleanup() {
	removed := s.Lockout.Sweep()
	s.Logger.Debug("housekeeping sweep completed",
		"removed", removed,
		"tracked", s.Lockout.Len(),
	)
}
