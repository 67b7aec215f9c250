package core

import (
	"time"

	"github.com/pkg/errors"
)

// FramePacer decouples the host refresh rate from the simulation rate. Each
// host tick carries a monotonic timestamp; a draw happens only once at least
// interval has elapsed since the previous draw.
//
// The pacer starts Idle with no previous draw, so the first tick always draws.
// An interval of zero makes every tick due.
type FramePacer struct {
	interval time.Duration
	drawer   Drawer
	last     time.Duration
	drawn    bool
}

// NewFramePacer constructs a pacer that calls d.Draw when a tick is due.
func NewFramePacer(interval time.Duration, d Drawer) (*FramePacer, error) {
	if interval < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewFramePacer] negative interval %s", interval)
	}
	if d == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "[NewFramePacer] nil drawer")
	}
	return &FramePacer{interval: interval, drawer: d}, nil
}

// Interval returns the minimum time between draws.
func (f *FramePacer) Interval() time.Duration { return f.interval }

// SetInterval changes the draw interval. It is safe to call from the host
// callback between ticks. Negative values are treated as zero.
func (f *FramePacer) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	f.interval = d
}

// Due reports whether a tick at ts would draw.
func (f *FramePacer) Due(ts time.Duration) bool {
	return !f.drawn || ts-f.last >= f.interval
}

// Tick handles one host clock callback and reports whether it drew.
func (f *FramePacer) Tick(ts time.Duration) bool {
	if !f.Due(ts) {
		return false
	}
	f.drawer.Draw()
	f.last = ts
	f.drawn = true
	return true
}

// Reset forgets the previous draw so the next tick draws unconditionally.
func (f *FramePacer) Reset() {
	f.last = 0
	f.drawn = false
}
