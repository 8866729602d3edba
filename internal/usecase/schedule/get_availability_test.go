package schedule

import (
	"context"
	"testing"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
)

// 2026-03-16 is a Monday, 2026-03-15 a Sunday.
const (
	monday = "2026-03-16"
	sunday = "2026-03-15"
)

func availabilityUC(r *fakeRepo, now string) *GetAvailability {
	return NewGetAvailability(r, fixedClock{now: mustTime(now)})
}

func availabilityInput(date string, serviceID uint) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1,
		UnitID:       1,
		BarberID:     1,
		ServiceID:    serviceID,
		Date:         date,
	}
}

func contains(slots []string, hm string) bool {
	for _, s := range slots {
		if s == hm {
			return true
		}
	}
	return false
}

func TestGetAvailability_FullOpenDay(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	uc := availabilityUC(r, "2026-03-10T08:00")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 20 {
		t.Fatalf("expected 20 slots for 09:00-19:00 and 30min, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "18:30" {
		t.Fatalf("expected 09:00..18:30, got %s..%s", slots[0], slots[len(slots)-1])
	}
}

func TestGetAvailability_ClosedDayIsEmptyNotError(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	uc := availabilityUC(r, "2026-03-10T08:00")

	slots, err := uc.Execute(context.Background(), availabilityInput(sunday, 1))
	if err != nil {
		t.Fatalf("closed day must not error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %v", slots)
	}
}

func TestGetAvailability_MissingHoursRowMeansClosed(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	delete(r.hours, 1)
	uc := availabilityUC(r, "2026-03-10T08:00")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots without an hours row, got %v", slots)
	}
}

func TestGetAvailability_ExistingBookingRemovesItsSlot(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T10:00"), "awaiting")
	uc := availabilityUC(r, "2026-03-10T08:00")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contains(slots, "10:00") {
		t.Fatal("10:00 must be taken")
	}
	if !contains(slots, "09:30") || !contains(slots, "10:30") {
		t.Fatal("neighbors of a 30min booking must stay free")
	}
}

func TestGetAvailability_LongerServiceNeedsLongerGap(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T10:00"), "awaiting")
	uc := availabilityUC(r, "2026-03-10T08:00")

	// asking for the 60-minute service: a 09:30 start would run into 10:00
	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contains(slots, "09:30") || contains(slots, "10:00") {
		t.Fatalf("09:30 and 10:00 must be blocked for a 60min service, got %v", slots)
	}
	if !contains(slots, "09:00") || !contains(slots, "10:30") {
		t.Fatalf("09:00 and 10:30 must stay free, got %v", slots)
	}
}

func TestGetAvailability_CancelledAndNoShowDoNotBlock(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T10:00"), "cancelled")
	r.addAppointment(1, 1, mustTime(monday+"T11:00"), "no_show")
	uc := availabilityUC(r, "2026-03-10T08:00")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(slots, "10:00") || !contains(slots, "11:00") {
		t.Fatal("cancelled and no_show appointments must not occupy slots")
	}
}

func TestGetAvailability_TodaySuppressesElapsedSlots(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	uc := availabilityUC(r, monday+"T12:15")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contains(slots, "12:00") {
		t.Fatal("12:00 already started and must be suppressed")
	}
	if slots[0] != "12:30" {
		t.Fatalf("expected first slot 12:30, got %s", slots[0])
	}
}

func TestGetAvailability_LateTodayLeavesNothing(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	uc := availabilityUC(r, monday+"T18:45")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("at 18:45 the 18:30 slot has started; expected none, got %v", slots)
	}
}

func TestGetAvailability_ExactBoundaryMinuteSuppressed(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	uc := availabilityUC(r, monday+"T14:00")

	slots, err := uc.Execute(context.Background(), availabilityInput(monday, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// only strictly-future starts survive
	if contains(slots, "14:00") {
		t.Fatal("a slot starting exactly now must be suppressed")
	}
	if !contains(slots, "14:30") {
		t.Fatal("14:30 must remain")
	}
}

func TestGetAvailability_UnknownReferences(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	uc := availabilityUC(r, "2026-03-10T08:00")

	in := availabilityInput(monday, 99)
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}

	in = availabilityInput(monday, 1)
	in.BarberID = 99
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}

	in = availabilityInput("15-03-2026", 1)
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}
