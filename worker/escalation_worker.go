package worker

import (
	"log"
	"sync"
	"time"

	"github.com/JaniDhruv/EduResolve/models"
)

// DefaultInterval is the production sweep interval.
const DefaultInterval = 24 * time.Hour

// Sweeper runs one escalation sweep.
type Sweeper interface {
	RunOnce() (models.SweepResult, error)
}

// EscalationWorker runs the escalation sweep immediately on start and then
// on a fixed interval for the lifetime of the process. Sweeps are
// single-flight: the loop is serial and a tick that fires while a sweep is
// still running is dropped rather than queued.
type EscalationWorker struct {
	sweeper  Sweeper
	interval time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewEscalationWorker creates a new escalation worker. A non-positive
// interval falls back to DefaultInterval.
func NewEscalationWorker(sweeper Sweeper, interval time.Duration) *EscalationWorker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &EscalationWorker{
		sweeper:  sweeper,
		interval: interval,
	}
}

// Start launches the worker goroutine. Calling Start on a running worker is
// a no-op.
func (w *EscalationWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		log.Println("[ESCALATION] worker is already running")
		return
	}

	w.running = true
	w.stopChan = make(chan struct{})
	w.doneChan = make(chan struct{})
	log.Printf("[ESCALATION] worker started (interval: %v)", w.interval)

	go w.run(w.stopChan, w.doneChan)
}

// Stop signals shutdown and waits for the loop to exit. The wait between
// runs aborts promptly; an in-flight sweep finishes its batch commit first.
func (w *EscalationWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stop, done := w.stopChan, w.doneChan
	w.mu.Unlock()

	log.Println("[ESCALATION] stopping worker...")
	close(stop)
	<-done
	log.Println("[ESCALATION] worker stopped")
}

// run is the main worker loop.
func (w *EscalationWorker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Sweep immediately on start. The drain applies here too: a startup
	// sweep that overruns the interval must not trigger an immediate re-run.
	w.sweep()
	drainTick(ticker)

	for {
		select {
		case <-ticker.C:
			w.sweep()
			drainTick(ticker)
		case <-stop:
			return
		}
	}
}

// drainTick discards one queued tick so a sweep that overran the interval is
// followed by a fresh full interval, not a back-to-back sweep.
func drainTick(ticker *time.Ticker) {
	select {
	case <-ticker.C:
	default:
	}
}

// sweep runs one sweep. Failures are logged and never stop the loop; the
// next scheduled run proceeds unaffected.
func (w *EscalationWorker) sweep() {
	start := time.Now()
	result, err := w.sweeper.RunOnce()
	if err != nil {
		log.Printf("[ESCALATION] sweep failed: %v", err)
		return
	}
	log.Printf("[ESCALATION] sweep completed in %v: %d escalated", time.Since(start), result.Escalated)
}
