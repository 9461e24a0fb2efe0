package booking

import (
	"errors"
	"time"
)

var (
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrStartNotFuture   = errors.New("start time must be in the future")
)

// Window is the half-open-in-spirit booking interval [start, end]; both
// bounds participate in CURRENT classification.
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow validates a window at creation time against the supplied "now".
func NewWindow(start, end, now time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrEndNotAfterStart
	}
	if !start.After(now) {
		return Window{}, ErrStartNotFuture
	}
	return Window{start: start, end: end}, nil
}

// ReconstructWindow restores a persisted window without creation-time checks;
// stored bookings legitimately have past windows.
func ReconstructWindow(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Contains reports whether now falls within the window, bounds inclusive.
func (w Window) Contains(now time.Time) bool {
	return !now.Before(w.start) && !now.After(w.end)
}

func (w Window) EndedBefore(now time.Time) bool {
	return w.end.Before(now)
}

func (w Window) StartsAfter(now time.Time) bool {
	return w.start.After(now)
}
