package domain

import "time"

// Window is the inclusive interval during which a campaign may run.
type Window struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both bounds are set and End is not before Start.
func (w Window) Valid() bool {
	if w.Start.IsZero() || w.End.IsZero() {
		return false
	}
	return !w.End.Before(w.Start)
}
