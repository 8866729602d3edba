package timezone

import (
	"testing"
	"time"
)

func TestParseDateTime_RoundTrip(t *testing.T) {
	got, err := ParseDateTime("2026-03-15T14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("expected wall clock 14:30, got %02d:%02d", got.Hour(), got.Minute())
	}

	_, offset := got.Zone()
	if offset != -3*60*60 {
		t.Fatalf("expected -03:00 offset, got %d seconds", offset)
	}

	if CivilDate(got) != "2026-03-15" {
		t.Fatalf("expected civil date 2026-03-15, got %s", CivilDate(got))
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, s := range []string{"", "2026-03-15", "2026-03-15 14:30", "15/03/2026T14:30"} {
		if _, err := ParseDateTime(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestDayRange(t *testing.T) {
	start, end, err := DayRange("2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("expected midnight start, got %s", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("expected 24h span, got %s", end.Sub(start))
	}
	if CivilDate(end) != "2026-03-16" {
		t.Fatalf("expected exclusive end on next day, got %s", CivilDate(end))
	}
}

func TestWeekday(t *testing.T) {
	// 2026-03-15 is a Sunday.
	d, _ := ParseDate("2026-03-15")
	if Weekday(d) != 0 {
		t.Fatalf("expected Sunday=0, got %d", Weekday(d))
	}

	sat, _ := ParseDate("2026-03-21")
	if Weekday(sat) != 6 {
		t.Fatalf("expected Saturday=6, got %d", Weekday(sat))
	}
}

func TestMinutesOfDay(t *testing.T) {
	at, _ := ParseDateTime("2026-03-15T18:45")
	if MinutesOfDay(at) != 18*60+45 {
		t.Fatalf("expected 1125, got %d", MinutesOfDay(at))
	}

	// An instant expressed in another zone still reads as São Paulo wall clock.
	utc := time.Date(2026, 3, 15, 21, 45, 0, 0, time.UTC)
	if MinutesOfDay(utc) != 18*60+45 {
		t.Fatalf("expected 1125 for 21:45 UTC, got %d", MinutesOfDay(utc))
	}
}

func TestDayBoundsOf(t *testing.T) {
	at, _ := ParseDateTime("2026-03-15T23:59")
	start, end := DayBoundsOf(at)

	if CivilDate(start) != "2026-03-15" {
		t.Fatalf("expected bounds on 2026-03-15, got %s", CivilDate(start))
	}
	if !at.Before(end) || at.Before(start) {
		t.Fatalf("instant must fall inside its own day bounds")
	}
}
