package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/session-wallet/internal/logger"
)

const (
	defaultIdleTimeout = 15 * time.Minute
	minCheckInterval   = 10 * time.Millisecond
)

type sessionJob struct {
	target SessionEnder

	lastActivity atomic.Int64
	expired      chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSessionJob creates a [SessionJob] that ends target's session after a
// period without Touch. The job is idle until Start is called.
func NewSessionJob(target SessionEnder, log *logger.Logger) SessionJob {
	j := &sessionJob{
		target:  target,
		expired: make(chan struct{}, 1),
		logger:  log.WithComponent("session_job"),
	}
	j.Touch()
	return j
}

// Start implements SessionJob. It stops any previously running watcher, then
// checks for inactivity a few times per idle period. A non-positive idle
// defaults to 15 minutes.
func (j *sessionJob) Start(ctx context.Context, idle time.Duration) {
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	interval := max(idle/4, minCheckInterval)

	j.Stop()
	j.Touch()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.idleFor() < idle {
					continue
				}
				j.expire(jobCtx)
			}
		}
	}()
}

func (j *sessionJob) Touch() {
	j.lastActivity.Store(time.Now().UnixNano())
}

func (j *sessionJob) Expired() <-chan struct{} {
	return j.expired
}

// Stop implements SessionJob. Safe to call when the job is not running.
func (j *sessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sessionJob) idleFor() time.Duration {
	return time.Since(time.Unix(0, j.lastActivity.Load()))
}

func (j *sessionJob) expire(ctx context.Context) {
	if err := j.target.EndSession(ctx); err != nil {
		j.logger.Err(err).Str("func", "*sessionJob.expire").Msg("failed to end idle session")
		return
	}
	// restart the idle clock so an untouched session is not wiped every tick
	j.Touch()

	select {
	case j.expired <- struct{}{}:
	default:
	}
}
