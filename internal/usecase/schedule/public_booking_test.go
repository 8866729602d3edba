package schedule

import (
	"context"
	"testing"

	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
)

func publicUC(r *fakeRepo) *PublicBooking {
	return NewPublicBooking(r, NewValidateBooking(r), noopLocker{}, nil, nil)
}

func publicInput(dateTime string) PublicBookingInput {
	return PublicBookingInput{
		Barbershop:  &models.Barbershop{ID: 1, Name: "Navalha de Ouro"},
		ClientName:  "Lucas",
		ClientPhone: "11988887777",
		UnitID:      1,
		BarberID:    1,
		ServiceID:   1,
		DateTime:    dateTime,
	}
}

func TestPublicBooking_CreatesClientAndAppointment(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	result, err := publicUC(r).Execute(context.Background(), publicInput(monday+"T14:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ap := result.Appointment
	if ap.Status != "awaiting" || ap.PublicCode == "" {
		t.Fatalf("bad appointment: status=%s code=%q", ap.Status, ap.PublicCode)
	}

	client, err := r.GetClient(context.Background(), 1, ap.ClientID)
	if err != nil {
		t.Fatalf("client must exist: %v", err)
	}
	if client.Phone != "11988887777" {
		t.Fatalf("expected client keyed by phone, got %s", client.Phone)
	}

	if result.PaymentURL != "" {
		t.Fatal("no deposit configured, payment URL must be empty")
	}
}

func TestPublicBooking_ReusesClientByPhone(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)

	in := publicInput(monday + "T14:00")
	in.ClientPhone = "11999990000" // seeded client

	result, err := publicUC(r).Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Appointment.ClientID != 1 {
		t.Fatalf("expected rebooking to reuse client 1, got %d", result.Appointment.ClientID)
	}
	if r.clients[1].Name != "Lucas" {
		t.Fatalf("rebooking must refresh the client name, got %s", r.clients[1].Name)
	}
}

func TestPublicBooking_BarberMustBelongToUnit(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.units[2] = &models.Unit{ID: 2, BarbershopID: 1, Name: "Filial"}
	r.barbers[2] = &models.Barber{ID: 2, BarbershopID: 1, UnitID: 2, Name: "Rafael", Status: models.BarberAvailable}

	in := publicInput(monday + "T14:00")
	in.BarberID = 2 // works at unit 2, request targets unit 1

	_, err := publicUC(r).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestPublicBooking_ConflictRejected(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T14:00"), "awaiting")

	_, err := publicUC(r).Execute(context.Background(), publicInput(monday+"T14:15"))
	if !httperr.IsBusiness(err, "scheduling_conflict") {
		t.Fatalf("expected scheduling_conflict, got %v", err)
	}
}

func TestPublicBooking_NoClientCreatedOnRejection(t *testing.T) {
	r := newFakeRepo()
	seedShop(r)
	r.addAppointment(1, 1, mustTime(monday+"T14:00"), "awaiting")
	before := len(r.clients)

	_, err := publicUC(r).Execute(context.Background(), publicInput(monday+"T14:00"))
	if err == nil {
		t.Fatal("expected rejection")
	}
	if len(r.clients) != before {
		t.Fatal("a rejected booking must not leave a new client behind")
	}
}
