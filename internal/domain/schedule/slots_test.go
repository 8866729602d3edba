package schedule

import "testing"

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots("09:00", "19:00", 30)

	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "18:30" {
		t.Fatalf("expected last slot 18:30, got %s", slots[len(slots)-1])
	}
}

func TestGenerateSlots_LongServiceTrimsTail(t *testing.T) {
	// A 45-minute cut cannot start at 18:30 because it would run past 19:00.
	slots := GenerateSlots("09:00", "19:00", 45)

	if slots[len(slots)-1] != "18:00" {
		t.Fatalf("expected last slot 18:00, got %s", slots[len(slots)-1])
	}
}

func TestGenerateSlots_DurationDoesNotFit(t *testing.T) {
	if slots := GenerateSlots("09:00", "10:00", 90); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	slots := GenerateSlots("09:00", "10:00", 60)

	if len(slots) != 1 || slots[0] != "09:00" {
		t.Fatalf("expected single 09:00 slot, got %v", slots)
	}
}

func TestGenerateSlots_MalformedBounds(t *testing.T) {
	if slots := GenerateSlots("9am", "19:00", 30); slots != nil {
		t.Fatalf("expected nil for malformed open, got %v", slots)
	}
	if slots := GenerateSlots("09:00", "19:00", 0); slots != nil {
		t.Fatalf("expected nil for zero duration, got %v", slots)
	}
}

func TestParseHM(t *testing.T) {
	m, err := ParseHM("18:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 18*60+45 {
		t.Fatalf("expected 1125, got %d", m)
	}

	if FormatHM(m) != "18:45" {
		t.Fatalf("expected 18:45, got %s", FormatHM(m))
	}

	if _, err := ParseHM("25:00"); err == nil {
		t.Fatal("expected error for 25:00")
	}
}
