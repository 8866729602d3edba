package schedule

import (
	"context"
	"strings"
	"testing"

	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
)

func createUC(r *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(r, NewValidateBooking(r), noopLocker{}, nil)
}

func createInput(dateTime string) CreateAppointmentInput {
	return CreateAppointmentInput{
		BarbershopID: 1,
		UnitID:       1,
		BarberID:     1,
		ClientID:     1,
		ServiceID:    1,
		DateTime:     dateTime,
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	ap, err := createUC(r).Execute(context.Background(), createInput(monday+"T10:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "awaiting" {
		t.Fatalf("new appointment must start awaiting, got %s", ap.Status)
	}
	if ap.PublicCode == "" {
		t.Fatal("new appointment must carry a public code")
	}
	if ap.ID == 0 {
		t.Fatal("appointment must be persisted")
	}
}

func TestCreateAppointment_ConflictRejected(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T10:00"), "awaiting")

	_, err := createUC(r).Execute(context.Background(), createInput(monday+"T10:00"))
	if !httperr.IsBusiness(err, "scheduling_conflict") {
		t.Fatalf("expected scheduling_conflict, got %v", err)
	}
}

func TestCreateAppointment_AdjacentBookingsAllowed(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T10:00"), "awaiting")

	// back-to-back with the existing 10:00-10:30
	if _, err := createUC(r).Execute(context.Background(), createInput(monday+"T10:30")); err != nil {
		t.Fatalf("touching bookings must not conflict: %v", err)
	}
	if _, err := createUC(r).Execute(context.Background(), createInput(monday+"T09:30")); err != nil {
		t.Fatalf("booking ending at the existing start must not conflict: %v", err)
	}
}

func TestCreateAppointment_OverCancelledSlot(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T10:00"), "cancelled")

	if _, err := createUC(r).Execute(context.Background(), createInput(monday+"T10:00")); err != nil {
		t.Fatalf("cancelled slot must be bookable again: %v", err)
	}
}

func TestCreateAppointment_BeforeOpeningRejectedWithBounds(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	_, err := createUC(r).Execute(context.Background(), createInput(monday+"T08:00"))
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("expected outside_business_hours, got %v", err)
	}
	if msg := httperr.BusinessMessage(err); !strings.Contains(msg, "09:00 - 19:00") {
		t.Fatalf("rejection must name the day's bounds, got %q", msg)
	}
}

func TestCreateAppointment_ClosedDayRejected(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	_, err := createUC(r).Execute(context.Background(), createInput(sunday+"T10:00"))
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("expected outside_business_hours on a closed day, got %v", err)
	}
}

func TestCreateAppointment_BarberFromOtherUnit(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.units[2] = &models.Unit{ID: 2, BarbershopID: 1, Name: "Filial"}
	r.barbers[2] = &models.Barber{ID: 2, BarbershopID: 1, UnitID: 2, Name: "Rafael", Status: models.BarberAvailable}

	in := createInput(monday + "T10:00")
	in.BarberID = 2
	_, err := createUC(r).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "barber_not_in_unit") {
		t.Fatalf("expected barber_not_in_unit, got %v", err)
	}
}

func TestCreateAppointment_UnknownClient(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	in := createInput(monday + "T10:00")
	in.ClientID = 99
	_, err := createUC(r).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("expected client_not_found, got %v", err)
	}
}

func TestCreateAppointment_MalformedDateTime(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	_, err := createUC(r).Execute(context.Background(), createInput("2026-03-16 10:00"))
	if !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}
