package timezone

import "time"

const Name = "America/Sao_Paulo"

// São Paulo abolished daylight saving in 2019, so the offset is a constant
// -03:00. A FixedZone keeps conversions deterministic regardless of the
// host tzdata.
const offsetSeconds = -3 * 60 * 60

var location = time.FixedZone(Name, offsetSeconds)

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

// ParseDateTime interprets a naive "YYYY-MM-DDTHH:mm" timestamp (the format
// produced by datetime-local inputs) as São Paulo wall-clock time and returns
// the instant it represents. The zone has no transitions, so every local time
// exists exactly once.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04", s, location)
}

// ParseDate interprets "YYYY-MM-DD" as midnight São Paulo time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, location)
}

// CivilDate formats the instant's date as seen on a São Paulo wall clock.
func CivilDate(t time.Time) string {
	return t.In(location).Format("2006-01-02")
}

// DayRange returns the half-open instant interval [00:00, next day 00:00)
// covering the given civil date.
func DayRange(date string) (time.Time, time.Time, error) {
	start, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(24 * time.Hour), nil
}

// DayBoundsOf returns the civil-day interval containing the given instant.
func DayBoundsOf(t time.Time) (time.Time, time.Time) {
	local := t.In(location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return start, start.Add(24 * time.Hour)
}

// Weekday returns the civil day of week, 0=Sunday .. 6=Saturday.
func Weekday(t time.Time) int {
	return int(t.In(location).Weekday())
}

// MinutesOfDay returns the wall-clock minutes elapsed since local midnight.
func MinutesOfDay(t time.Time) int {
	local := t.In(location)
	return local.Hour()*60 + local.Minute()
}
