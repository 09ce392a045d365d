package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/session-wallet/internal/logger"
)

// spyEnder считает вызовы EndSession.
type spyEnder struct {
	calls atomic.Int64
	err   error
}

func (s *spyEnder) EndSession(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestNewSessionJob_ReturnsInterface(t *testing.T) {
	job := NewSessionJob(&spyEnder{}, logger.Nop())
	require.NotNil(t, job)

	var _ SessionJob = job
}

func TestSessionJob_ExpiresIdleSession(t *testing.T) {
	spy := &spyEnder{}
	job := NewSessionJob(spy, logger.Nop())

	job.Start(context.Background(), 20*time.Millisecond)
	defer job.Stop()

	select {
	case <-job.Expired():
	case <-time.After(time.Second):
		t.Fatal("session was not expired")
	}
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

func TestSessionJob_TouchKeepsSessionAlive(t *testing.T) {
	spy := &spyEnder{}
	job := NewSessionJob(spy, logger.Nop())

	job.Start(context.Background(), 200*time.Millisecond)
	for i := 0; i < 10; i++ {
		job.Touch()
		time.Sleep(10 * time.Millisecond)
	}
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSessionJob_EndSessionErrorIsNotReported(t *testing.T) {
	spy := &spyEnder{err: errors.New("store closed")}
	job := NewSessionJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
	select {
	case <-job.Expired():
		t.Fatal("failed expiry must not be reported")
	default:
	}
}

func TestSessionJob_StopWithoutStart(t *testing.T) {
	job := NewSessionJob(&spyEnder{}, logger.Nop())

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked")
	}
}

func TestSessionJob_StopHaltsWatcher(t *testing.T) {
	spy := &spyEnder{}
	job := NewSessionJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	before := spy.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, spy.calls.Load())
}
