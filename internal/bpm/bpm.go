// Package bpm estimates a tempo from a sequence of tap timestamps.
package bpm

import "math"

const (
	// resetThresholdMs: a gap longer than this starts a new tapping session.
	resetThresholdMs = 2000
	// maxTaps caps retained history; the oldest tap is dropped beyond it.
	maxTaps = 128
)

// Estimator accumulates tap timestamps (milliseconds, monotonically
// increasing) and derives beats per minute from the mean inter-tap interval.
type Estimator struct {
	taps []int64
	bpm  int
}

// Tap records a tap at the given timestamp and returns the current estimate.
// A tap arriving more than 2s after the previous one discards all prior
// history before being recorded. The estimate only moves when the computed
// value is positive, so near-simultaneous taps cannot zero it out.
func (e *Estimator) Tap(ms int64) int {
	if n := len(e.taps); n > 0 && ms-e.taps[n-1] > resetThresholdMs {
		e.taps = e.taps[:0]
	}
	e.taps = append(e.taps, ms)
	if len(e.taps) > maxTaps {
		e.taps = e.taps[1:]
	}

	if len(e.taps) >= 2 {
		first := e.taps[0]
		last := e.taps[len(e.taps)-1]
		mean := float64(last-first) / float64(len(e.taps)-1)
		if mean > 0 {
			if v := int(math.Round(60000 / mean)); v > 0 {
				e.bpm = v
			}
		}
	}
	return e.bpm
}

// Bpm returns the last positive estimate, or 0 when none has been computed.
func (e *Estimator) Bpm() int {
	return e.bpm
}

// Count returns how many taps are currently retained.
func (e *Estimator) Count() int {
	return len(e.taps)
}

// Estimate feeds a full tap sequence through a fresh Estimator and returns
// the resulting tempo. Used by the stateless estimate endpoint: the browser
// keeps the timestamp list, the server only does the arithmetic.
func Estimate(taps []int64) int {
	var e Estimator
	for _, t := range taps {
		e.Tap(t)
	}
	return e.Bpm()
}
