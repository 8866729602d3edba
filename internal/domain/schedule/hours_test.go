package schedule

import (
	"strings"
	"testing"

	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
)

func openHours(start, end string) *models.OperatingHours {
	return &models.OperatingHours{Open: true, StartTime: start, EndTime: end}
}

func TestCheckWithinHours_Inside(t *testing.T) {
	h := openHours("09:00", "19:00")

	if err := CheckWithinHours(h, at(t, "2026-03-16T09:00"), 30); err != nil {
		t.Fatalf("opening slot must be allowed: %v", err)
	}
	if err := CheckWithinHours(h, at(t, "2026-03-16T18:30"), 30); err != nil {
		t.Fatalf("slot ending exactly at close must be allowed: %v", err)
	}
}

func TestCheckWithinHours_BeforeOpen(t *testing.T) {
	err := CheckWithinHours(openHours("09:00", "19:00"), at(t, "2026-03-16T08:00"), 30)
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("expected outside_business_hours, got %v", err)
	}
	if msg := httperr.BusinessMessage(err); !strings.Contains(msg, "09:00 - 19:00") {
		t.Fatalf("rejection must carry the day's bounds, got %q", msg)
	}
}

func TestCheckWithinHours_RunsPastClose(t *testing.T) {
	err := CheckWithinHours(openHours("09:00", "19:00"), at(t, "2026-03-16T18:45"), 30)
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("expected outside_business_hours, got %v", err)
	}
}

func TestCheckWithinHours_ClosedDay(t *testing.T) {
	closed := &models.OperatingHours{Open: false, StartTime: "09:00", EndTime: "13:00"}
	if err := CheckWithinHours(closed, at(t, "2026-03-15T10:00"), 30); !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("closed day must reject, got %v", err)
	}

	// no row at all means the same thing
	if err := CheckWithinHours(nil, at(t, "2026-03-15T10:00"), 30); !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("missing hours must reject, got %v", err)
	}
}

func TestCheckWithinHours_CrossesMidnight(t *testing.T) {
	err := CheckWithinHours(openHours("09:00", "23:00"), at(t, "2026-03-16T23:30"), 60)
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("appointment spilling into next day must reject, got %v", err)
	}
}

func TestStatusBlocks(t *testing.T) {
	blocking := []Status{StatusAwaiting, StatusInProgress, StatusCompleted}
	for _, s := range blocking {
		if !s.Blocks() {
			t.Fatalf("%s must block", s)
		}
	}

	if StatusCancelled.Blocks() || StatusNoShow.Blocks() {
		t.Fatal("cancelled and no_show must never block")
	}

	if IsValidStatus("scheduled") {
		t.Fatal("unknown status must be invalid")
	}
	if !IsValidStatus("no_show") {
		t.Fatal("no_show must be valid")
	}
}
