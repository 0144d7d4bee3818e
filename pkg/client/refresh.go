package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixperk/ldlm/pkg/metrics"
	"github.com/pixperk/ldlm/pkg/types"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/atomic"
)

type refreshFunc func(ctx context.Context, lease types.Lease) error

// one background refresher per lock name
type refreshTimer struct {
	lease    types.Lease
	interval time.Duration
	fires    *atomic.Int64

	stop chan struct{}
	done chan struct{}
}

type refreshScheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	timers      *xsync.MapOf[string, *refreshTimer]
	refresh     refreshFunc
	minInterval time.Duration
	logger      *slog.Logger
	onError     func(name string, err error)
}

func newRefreshScheduler(refresh refreshFunc, minInterval time.Duration, logger *slog.Logger, onError func(string, error)) *refreshScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &refreshScheduler{
		ctx:         ctx,
		cancel:      cancel,
		timers:      xsync.NewMapOf[string, *refreshTimer](),
		refresh:     refresh,
		minInterval: minInterval,
		logger:      logger,
		onError:     onError,
	}
}

// start refreshes the lease every interval until cancel is called for its name.
// The first refresh happens after one full interval.
func (s *refreshScheduler) start(lease types.Lease) error {
	t := &refreshTimer{
		lease:    lease,
		interval: lease.RefreshInterval(s.minInterval),
		fires:    atomic.NewInt64(0),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if _, loaded := s.timers.LoadOrStore(lease.Name, t); loaded {
		return fmt.Errorf("%w: %s", types.ErrRefreshTimerExists, lease.Name)
	}
	metrics.RefreshTimersActive.Inc()

	s.logger.Debug("refresh timer started", "lock", lease.Name, "interval", t.interval)
	go s.run(t)
	return nil
}

func (s *refreshScheduler) run(t *refreshTimer) {
	defer close(t.done)

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
		case <-t.stop:
			return
		case <-s.ctx.Done():
			return
		}

		// stop wins over a timer that fired at the same time
		select {
		case <-t.stop:
			return
		default:
		}

		if err := s.refresh(s.ctx, t.lease); err != nil {
			if s.ctx.Err() != nil {
				return
			}
			s.fail(t, err)
			return
		}

		t.fires.Inc()
		metrics.RefreshTotal.WithLabelValues(metrics.StatusSuccess).Inc()
		s.logger.Debug("lock refreshed", "lock", t.lease.Name, "fires", t.fires.Load())

		timer.Reset(t.interval)
	}
}

// a failed refresh ends the keepalive, the lock will expire on the server
func (s *refreshScheduler) fail(t *refreshTimer, err error) {
	metrics.RefreshTotal.WithLabelValues(metrics.StatusFailure).Inc()
	s.logger.Error("lock refresh failed, lock is no longer refreshed",
		"lock", t.lease.Name,
		"error", err)

	// drop our own entry so the name can be locked and refreshed again
	removed := false
	s.timers.Compute(t.lease.Name, func(old *refreshTimer, loaded bool) (*refreshTimer, bool) {
		if loaded && old == t {
			removed = true
			return nil, true
		}
		return old, !loaded
	})
	if removed {
		metrics.RefreshTimersActive.Dec()
	}

	if s.onError != nil {
		s.onError(t.lease.Name, err)
	}
}

// cancelTimer stops the timer for name and waits for its goroutine to exit.
// A refresh already in flight completes first. Reports whether a timer existed.
func (s *refreshScheduler) cancelTimer(name string) bool {
	t, ok := s.timers.LoadAndDelete(name)
	if !ok {
		return false
	}
	metrics.RefreshTimersActive.Dec()

	close(t.stop)
	<-t.done

	s.logger.Debug("refresh timer cancelled", "lock", name, "fires", t.fires.Load())
	return true
}

func (s *refreshScheduler) has(name string) bool {
	_, ok := s.timers.Load(name)
	return ok
}

func (s *refreshScheduler) active() int {
	return s.timers.Size()
}

// stopAll aborts in-flight refreshes and joins every timer
func (s *refreshScheduler) stopAll() {
	s.cancel()
	s.timers.Range(func(name string, _ *refreshTimer) bool {
		s.cancelTimer(name)
		return true
	})
}
