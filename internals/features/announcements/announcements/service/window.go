package service

import "time"

// DefaultDuration is how long an announcement is shown when no end
// date is supplied, and the span used when the supplied end precedes
// the start.
const DefaultDuration = 24 * time.Hour

// ResolveWindow normalizes an announcement display window.
// A missing start falls back to now, a missing end to start plus one
// day, and an end before the start is corrected to start plus one day.
func ResolveWindow(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	s := now
	if start != nil {
		s = *start
	}
	e := s.Add(DefaultDuration)
	if end != nil && !end.Before(s) {
		e = *end
	}
	return s, e
}
