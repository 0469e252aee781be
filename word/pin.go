package word

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tliron/commonlog"
)

var pinLog = commonlog.GetLogger("packword.pin")

// ---------------------------------------------------------------------------
// PinSet: keep-alive registry for pointees addressed through raw words
// ---------------------------------------------------------------------------

// PinSet keeps pointees alive while their addresses circulate as bare
// bit patterns inside Words. Once an address is converted to an integer
// the garbage collector can no longer trace the reference; the PinSet
// maintains the Go-visible reference on the caller's behalf.
//
// Release marks an entry for reclamation but leaves its slot in place;
// slots are reclaimed in batches by Sweep, either manually (SweepNow) or
// from the optional background sweeper (Start/Stop). This keeps Release
// cheap on hot paths and mirrors how long-lived programs reclaim
// registry slots off the critical path.
type PinSet struct {
	mu      sync.Mutex
	entries map[Addr]*pinEntry

	interval time.Duration
	enabled  atomic.Bool
	stop     chan struct{}
	stopped  chan struct{}
	lifeMu   sync.Mutex // protects start/stop lifecycle

	sweepCount atomic.Uint64
	lastStats  atomic.Value // *PinSweepStats
}

type pinEntry struct {
	ref      any
	released bool
}

// PinSweepStats holds statistics from a single sweep pass.
type PinSweepStats struct {
	Reclaimed     int
	Remaining     int
	SweepDuration time.Duration
	Timestamp     time.Time
}

// DefaultSweepInterval is the default background sweep interval.
const DefaultSweepInterval = 30 * time.Second

// NewPinSet creates an empty PinSet with the given background sweep
// interval. Use DefaultSweepInterval for the default (30s). The
// background sweeper does not run until Start is called.
func NewPinSet(interval time.Duration) *PinSet {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	s := &PinSet{
		entries:  make(map[Addr]*pinEntry),
		interval: interval,
	}
	s.enabled.Store(true)
	return s
}

// Pin keeps p alive and returns its address, ready for packing. Pinning
// an address that is already live un-releases it.
func Pin[T any](s *PinSet, p *T) Addr {
	a := AddrOf(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[a]; ok {
		e.ref = p
		e.released = false
		return a
	}
	s.entries[a] = &pinEntry{ref: p}
	return a
}

// Release marks the entry for a as reclaimable. Releasing an unknown or
// already-released address is a no-op. The pointee stays reachable until
// the next sweep.
func (s *PinSet) Release(a Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[a]; ok {
		e.released = true
	}
}

// Pinned reports whether a is currently live in the set.
func (s *PinSet) Pinned(a Addr) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[a]
	return ok && !e.released
}

// Len returns the number of slots in the set, including released slots
// not yet swept.
func (s *PinSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// SweepNow performs an immediate sweep regardless of the timer.
func (s *PinSet) SweepNow() *PinSweepStats {
	return s.sweep()
}

// SweepCount returns the total number of sweeps performed.
func (s *PinSet) SweepCount() uint64 {
	return s.sweepCount.Load()
}

// LastStats returns statistics from the most recent sweep, or nil if no
// sweep has run yet.
func (s *PinSet) LastStats() *PinSweepStats {
	v := s.lastStats.Load()
	if v == nil {
		return nil
	}
	return v.(*PinSweepStats)
}

// SetEnabled enables or disables sweeping. When disabled the background
// goroutine keeps running but skips sweep passes.
func (s *PinSet) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// IsEnabled returns whether sweeping is currently enabled.
func (s *PinSet) IsEnabled() bool {
	return s.enabled.Load()
}

// Start begins the background sweep goroutine. Safe to call multiple
// times; only one sweep loop will run.
func (s *PinSet) Start() {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()

	if s.stop != nil {
		return // already running
	}

	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})

	// Capture channels locally so the goroutine never reads fields that
	// Stop() has nilled out.
	stopCh := s.stop
	stoppedCh := s.stopped
	go s.loop(stopCh, stoppedCh)
}

// Stop halts the background sweeper and waits for it to finish. Safe to
// call multiple times or on a set that was never started.
func (s *PinSet) Stop() {
	s.lifeMu.Lock()
	stopCh := s.stop
	stoppedCh := s.stopped
	s.stop = nil
	s.stopped = nil
	s.lifeMu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-stoppedCh
	}
}

func (s *PinSet) loop(stopCh <-chan struct{}, stoppedCh chan struct{}) {
	defer close(stoppedCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if s.enabled.Load() {
				s.sweep()
			}
		}
	}
}

// sweep reclaims every released slot in one pass.
func (s *PinSet) sweep() *PinSweepStats {
	start := time.Now()

	s.mu.Lock()
	reclaimed := 0
	for a, e := range s.entries {
		if e.released {
			delete(s.entries, a)
			reclaimed++
		}
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	stats := &PinSweepStats{
		Reclaimed:     reclaimed,
		Remaining:     remaining,
		SweepDuration: time.Since(start),
		Timestamp:     start,
	}
	s.sweepCount.Add(1)
	s.lastStats.Store(stats)

	pinLog.Debugf("sweep reclaimed %d slots, %d remaining (%s)",
		reclaimed, remaining, stats.SweepDuration)

	return stats
}
