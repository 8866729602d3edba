package schedule

import "time"

// BusyAppointment is an existing booking as seen by the conflict checker:
// its start instant plus the duration of its own service, joined at query
// time so service edits are always reflected.
type BusyAppointment struct {
	ID          uint
	Start       time.Time
	DurationMin int
}

func (b BusyAppointment) End() time.Time {
	return b.Start.Add(time.Duration(b.DurationMin) * time.Minute)
}

// HasOverlap tests the half-open interval [start, end) against each existing
// appointment's [Start, End). Touching endpoints are not a conflict: a booking
// ending 10:00 coexists with one starting 10:00.
func HasOverlap(start, end time.Time, existing []BusyAppointment) bool {
	for _, ap := range existing {
		if ap.Start.Before(end) && ap.End().After(start) {
			return true
		}
	}
	return false
}
