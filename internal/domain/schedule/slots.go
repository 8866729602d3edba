package schedule

import (
	"fmt"
	"time"
)

// SlotStepMinutes is the fixed grid on which candidate slots are generated.
// It is intentionally not configurable per service.
const SlotStepMinutes = 30

// ParseHM converts "HH:mm" to minutes since midnight.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM converts minutes since midnight back to "HH:mm".
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots enumerates candidate start times on the 30-minute grid within
// [open, close]. A start s is included iff s >= open and s+duration <= close,
// so no slot starts before opening or runs past closing. The result is in
// ascending order; it is empty when the duration does not fit the window or
// when the bounds are malformed.
func GenerateSlots(open, close string, durationMin int) []string {
	openMin, err := ParseHM(open)
	if err != nil {
		return nil
	}
	closeMin, err := ParseHM(close)
	if err != nil {
		return nil
	}
	if durationMin <= 0 {
		return nil
	}

	var slots []string
	for m := openMin; m+durationMin <= closeMin; m += SlotStepMinutes {
		slots = append(slots, FormatHM(m))
	}
	return slots
}
