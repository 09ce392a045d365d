package service

import (
	"math"
	"sync"

	"github.com/MKhiriev/session-wallet/models"
)

// progressBuffer fits every distinct value of a monotonic 0..100 sequence,
// so reporting never blocks on a slow reader.
const progressBuffer = 101

// CreateTask is a running account creation started by
// [AccountManager.StartCreate].
type CreateTask struct {
	updates chan int
	done    chan struct{}

	mu       sync.Mutex
	last     int
	sent     bool
	account  models.Account
	err      error
	mnemonic string
}

func newCreateTask() *CreateTask {
	return &CreateTask{
		updates: make(chan int, progressBuffer),
		done:    make(chan struct{}),
	}
}

// Updates yields progress percentages. Values never decrease and the
// channel is closed when the task ends.
func (t *CreateTask) Updates() <-chan int {
	return t.updates
}

// Done is closed when the task ends.
func (t *CreateTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task ends and returns the created account, or
// ErrDeclined when the user cancelled the password prompt.
func (t *CreateTask) Wait() (models.Account, error) {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.account, t.err
}

// Mnemonic returns the recovery phrase of the created account once the
// task has succeeded, and "" otherwise. The phrase is never persisted, so
// this is the only chance to show it.
func (t *CreateTask) Mnemonic() string {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mnemonic
}

func (t *CreateTask) setMnemonic(mnemonic string) {
	t.mu.Lock()
	t.mnemonic = mnemonic
	t.mu.Unlock()
}

// report converts a provider fraction to a percentage and publishes it when
// it moves forward. It returns the published value.
func (t *CreateTask) report(fraction float64) (int, bool) {
	p := percent(fraction)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sent && p <= t.last {
		return t.last, false
	}
	t.last, t.sent = p, true

	select {
	case t.updates <- p:
	default:
	}
	return p, true
}

func (t *CreateTask) finish(account models.Account, err error) {
	t.mu.Lock()
	t.account, t.err = account, err
	close(t.updates)
	t.mu.Unlock()

	close(t.done)
}

// percent maps a fraction in [0, 1] to floor(f*100), clamped to 0..100.
func percent(fraction float64) int {
	if math.IsNaN(fraction) {
		return 0
	}
	p := int(math.Floor(fraction * 100))
	return max(0, min(100, p))
}
