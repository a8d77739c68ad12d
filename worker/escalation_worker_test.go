package worker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaniDhruv/EduResolve/models"
)

// fakeSweeper signals each sweep on a channel.
type fakeSweeper struct {
	runs chan struct{}
}

func newFakeSweeper() *fakeSweeper {
	return &fakeSweeper{runs: make(chan struct{}, 16)}
}

func (f *fakeSweeper) RunOnce() (models.SweepResult, error) {
	f.runs <- struct{}{}
	return models.SweepResult{}, nil
}

func waitForRun(t *testing.T, s *fakeSweeper) {
	t.Helper()
	select {
	case <-s.runs:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sweep")
	}
}

func TestWorkerSweepsImmediatelyOnStart(t *testing.T) {
	sweeper := newFakeSweeper()
	w := NewEscalationWorker(sweeper, time.Hour)

	w.Start()
	defer w.Stop()

	waitForRun(t, sweeper)
}

func TestWorkerSweepsOnInterval(t *testing.T) {
	sweeper := newFakeSweeper()
	w := NewEscalationWorker(sweeper, 10*time.Millisecond)

	w.Start()
	defer w.Stop()

	// Immediate run plus at least two ticks.
	waitForRun(t, sweeper)
	waitForRun(t, sweeper)
	waitForRun(t, sweeper)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	sweeper := newFakeSweeper()
	w := NewEscalationWorker(sweeper, time.Hour)

	w.Start()
	waitForRun(t, sweeper)

	w.Stop()
	w.Stop()

	// No sweeps after Stop returns.
	select {
	case <-sweeper.runs:
		t.Fatal("sweep ran after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWorkerStartTwiceIsNoOp(t *testing.T) {
	sweeper := newFakeSweeper()
	w := NewEscalationWorker(sweeper, time.Hour)

	w.Start()
	w.Start()
	defer w.Stop()

	waitForRun(t, sweeper)

	// Only one loop means only the single startup sweep.
	select {
	case <-sweeper.runs:
		t.Fatal("second loop is running")
	case <-time.After(50 * time.Millisecond):
	}
}

// gatedSweeper blocks its first sweep until released, recording when each
// sweep starts and whether the blocked sweep ran to completion.
type gatedSweeper struct {
	mu       sync.Mutex
	starts   []time.Time
	finished bool

	entered chan struct{}
	release chan struct{}
}

func newGatedSweeper() *gatedSweeper {
	return &gatedSweeper{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (s *gatedSweeper) RunOnce() (models.SweepResult, error) {
	s.mu.Lock()
	s.starts = append(s.starts, time.Now())
	first := len(s.starts) == 1
	s.mu.Unlock()

	s.entered <- struct{}{}
	if first {
		<-s.release
		s.mu.Lock()
		s.finished = true
		s.mu.Unlock()
	}
	return models.SweepResult{}, nil
}

func waitForEntry(t *testing.T, s *gatedSweeper) {
	t.Helper()
	select {
	case <-s.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sweep to start")
	}
}

func TestWorkerSkipsTickQueuedDuringLongSweep(t *testing.T) {
	sweeper := newGatedSweeper()
	w := NewEscalationWorker(sweeper, 200*time.Millisecond)

	w.Start()
	defer w.Stop()

	waitForEntry(t, sweeper)

	// Hold the startup sweep past the interval so a tick queues behind it.
	time.Sleep(300 * time.Millisecond)

	sweeper.mu.Lock()
	assert.Len(t, sweeper.starts, 1, "sweeps must not overlap")
	sweeper.mu.Unlock()

	released := time.Now()
	close(sweeper.release)

	waitForEntry(t, sweeper)

	sweeper.mu.Lock()
	gap := sweeper.starts[1].Sub(released)
	sweeper.mu.Unlock()

	// The tick that fired during the overrunning sweep is dropped, so the
	// second sweep waits for a fresh tick instead of running back-to-back.
	assert.GreaterOrEqual(t, gap, 50*time.Millisecond)
}

func TestWorkerStopWaitsForInFlightSweep(t *testing.T) {
	sweeper := newGatedSweeper()
	w := NewEscalationWorker(sweeper, time.Hour)

	w.Start()
	waitForEntry(t, sweeper)

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(sweeper.release)
	}()

	w.Stop()

	sweeper.mu.Lock()
	defer sweeper.mu.Unlock()
	assert.True(t, sweeper.finished, "Stop returned before the in-flight sweep completed")
}

func TestWorkerDefaultInterval(t *testing.T) {
	w := NewEscalationWorker(newFakeSweeper(), 0)
	require.NotNil(t, w)
	assert.Equal(t, DefaultInterval, w.interval)
}
