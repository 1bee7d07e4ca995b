package here

import (
	"fmt"
	"sync"
	"time"
)

// Pulse is the result of a single [PulseCounter.Pulse].
type Pulse struct {
	Number uint64        // 1 for the first pulse after construction or reset
	Now    time.Time     // when the pulse happened
	Change time.Duration // since the previous pulse, or construction, or reset
}

// String renders the pulse as it appears in a timestamp notice.
func (p Pulse) String() string {
	return fmt.Sprintf("#=%04d, diff=%.6f, at=%.6f", p.Number, p.Change.Seconds(), epochSeconds(p.Now))
}

// PulseCounter counts timestamp notices and measures the time between them.
// One counter is typically shared by every notice in a process, via the
// default tracer, but counters can also be constructed and passed to tracers
// explicitly.
//
// PulseCounter is safe for concurrent use. Concurrent pulses always observe
// distinct, consecutive numbers, and each pulse's change is measured against
// the pulse numbered immediately before it.
type PulseCounter struct {
	mtx   sync.Mutex
	now   func() time.Time
	count uint64
	last  time.Time
}

// NewPulseCounter returns a counter with no pulses, whose first change is
// measured from now.
func NewPulseCounter() *PulseCounter {
	return newPulseCounterClock(time.Now)
}

func newPulseCounterClock(now func() time.Time) *PulseCounter {
	return &PulseCounter{
		now:  now,
		last: now(),
	}
}

// Pulse increments the counter and returns the new number, the current time,
// and the time elapsed since the previous pulse.
func (pc *PulseCounter) Pulse() Pulse {
	pc.mtx.Lock()
	defer pc.mtx.Unlock()

	now := pc.now()
	change := now.Sub(pc.last)
	pc.count++
	pc.last = now

	return Pulse{
		Number: pc.count,
		Now:    now,
		Change: change,
	}
}

// Reset zeroes the count and restarts the change measurement from now.
func (pc *PulseCounter) Reset() {
	pc.mtx.Lock()
	defer pc.mtx.Unlock()

	pc.count = 0
	pc.last = pc.now()
}

// Count returns the number of pulses since construction or reset.
func (pc *PulseCounter) Count() uint64 {
	pc.mtx.Lock()
	defer pc.mtx.Unlock()
	return pc.count
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}
