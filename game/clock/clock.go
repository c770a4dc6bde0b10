// Package clock drives simulation ticks at one of two rates.
//
// The clock does not own a goroutine or a timer. Front-ends poll Due once per
// frame with the current time, so the same clock works inside a raylib frame
// loop, a bubbletea message loop and in tests with synthetic time.
package clock

import "time"

// Rate selects which trigger is active
type Rate int

const (
	Normal Rate = iota
	Fast
)

func (r Rate) String() string {
	if r == Fast {
		return "fast"
	}
	return "normal"
}

// Default periods
const (
	NormalPeriod = 200 * time.Millisecond
	FastPeriod   = 0 // fire on every poll
)

// Clock is a re-armable periodic trigger with exactly one active period
type Clock struct {
	periods [2]time.Duration
	rate    Rate
	next    time.Time
	armed   bool
	stopped bool
}

// New returns an unarmed clock. Negative periods are treated as zero.
func New(normal, fast time.Duration) *Clock {
	if normal < 0 {
		normal = 0
	}
	if fast < 0 {
		fast = 0
	}
	return &Clock{periods: [2]time.Duration{normal, fast}}
}

// Start arms the Normal trigger
func (c *Clock) Start(now time.Time) {
	if c.stopped {
		return
	}
	c.arm(Normal, now)
}

// SetRate cancels the active trigger and arms the one for r. It reports
// whether anything changed; asking for the current rate is a no-op.
func (c *Clock) SetRate(r Rate, now time.Time) bool {
	if c.stopped || (c.armed && c.rate == r) {
		return false
	}
	c.arm(r, now)
	return true
}

func (c *Clock) arm(r Rate, now time.Time) {
	c.rate = r
	c.next = now.Add(c.periods[r])
	c.armed = true
}

// Stop cancels the active trigger for good
func (c *Clock) Stop() {
	c.stopped = true
	c.armed = false
}

// Due reports whether the active trigger fires at now and re-arms it.
// Missed intervals are dropped, not replayed.
func (c *Clock) Due(now time.Time) bool {
	if !c.armed || now.Before(c.next) {
		return false
	}
	c.next = now.Add(c.periods[c.rate])
	return true
}

func (c *Clock) Rate() Rate {
	return c.rate
}

func (c *Clock) Period() time.Duration {
	return c.periods[c.rate]
}

func (c *Clock) Armed() bool {
	return c.armed
}

func (c *Clock) Stopped() bool {
	return c.stopped
}
