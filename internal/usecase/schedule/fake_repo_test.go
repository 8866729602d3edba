package schedule

import (
	"context"
	"errors"
	"time"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

var errNotFound = errors.New("not found")

// fakeRepo is an in-memory domain.Repository. Appointments carry their
// service's duration through the services map, mirroring the join the real
// repository performs.
type fakeRepo struct {
	units    map[uint]*models.Unit
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service
	clients  map[uint]*models.Client
	hours    map[int]*models.OperatingHours // weekday -> row, all units

	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		units:    map[uint]*models.Unit{},
		barbers:  map[uint]*models.Barber{},
		services: map[uint]*models.Service{},
		clients:  map[uint]*models.Client{},
		hours:    map[int]*models.OperatingHours{},
		nextID:   1,
	}
}

// seedShop wires a minimal tenant: one unit, one barber, a 30-minute and a
// 60-minute service, one client, open 09:00-19:00 every day except Sunday.
func seedShop(r *fakeRepo) {
	r.units[1] = &models.Unit{ID: 1, BarbershopID: 1, Name: "Matriz"}
	r.barbers[1] = &models.Barber{ID: 1, BarbershopID: 1, UnitID: 1, Name: "João", Status: models.BarberAvailable}
	r.services[1] = &models.Service{ID: 1, BarbershopID: 1, Name: "Corte", DurationMin: 30}
	r.services[2] = &models.Service{ID: 2, BarbershopID: 1, Name: "Corte e barba", DurationMin: 60}
	r.clients[1] = &models.Client{ID: 1, BarbershopID: 1, Name: "Pedro", Phone: "11999990000"}

	for wd := 1; wd <= 6; wd++ {
		r.hours[wd] = &models.OperatingHours{UnitID: 1, Weekday: wd, Open: true, StartTime: "09:00", EndTime: "19:00"}
	}
	r.hours[0] = &models.OperatingHours{UnitID: 1, Weekday: 0, Open: false, StartTime: "09:00", EndTime: "13:00"}
}

func (r *fakeRepo) addAppointment(barberID, serviceID uint, start time.Time, status string) *models.Appointment {
	ap := &models.Appointment{
		ID:           r.nextID,
		BarbershopID: 1,
		UnitID:       1,
		BarberID:     barberID,
		ClientID:     1,
		ServiceID:    serviceID,
		StartTime:    start,
		Status:       status,
	}
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return ap
}

func (r *fakeRepo) GetUnit(_ context.Context, shopID, unitID uint) (*models.Unit, error) {
	u, ok := r.units[unitID]
	if !ok || u.BarbershopID != shopID {
		return nil, errNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetBarber(_ context.Context, shopID, unitID, barberID uint) (*models.Barber, error) {
	b, ok := r.barbers[barberID]
	if !ok || b.BarbershopID != shopID {
		return nil, errNotFound
	}
	if unitID != 0 && b.UnitID != unitID {
		return nil, errNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetService(_ context.Context, shopID, serviceID uint) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok || s.BarbershopID != shopID {
		return nil, errNotFound
	}
	return s, nil
}

func (r *fakeRepo) GetClient(_ context.Context, shopID, clientID uint) (*models.Client, error) {
	c, ok := r.clients[clientID]
	if !ok || c.BarbershopID != shopID {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, shopID uint, name, phone, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.BarbershopID == shopID && c.Phone == phone {
			c.Name = name
			if email != "" {
				c.Email = email
			}
			return c, nil
		}
	}
	c := &models.Client{ID: r.nextID, BarbershopID: shopID, Name: name, Phone: phone, Email: email}
	r.nextID++
	r.clients[c.ID] = c
	return c, nil
}

func (r *fakeRepo) GetOperatingHours(_ context.Context, _ uint, weekday int) (*models.OperatingHours, error) {
	return r.hours[weekday], nil
}

func (r *fakeRepo) ListBarberDay(_ context.Context, barberID uint, dayStart, dayEnd time.Time, excludeID uint) ([]domain.BusyAppointment, error) {
	var busy []domain.BusyAppointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.ID == excludeID {
			continue
		}
		if !domain.Status(ap.Status).Blocks() {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		svc, ok := r.services[ap.ServiceID]
		if !ok {
			continue
		}
		busy = append(busy, domain.BusyAppointment{
			ID:          ap.ID,
			Start:       ap.StartTime,
			DurationMin: svc.DurationMin,
		})
	}
	return busy, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, shopID, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.BarbershopID == shopID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return errNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

// fixedClock pins availability's view of "now".
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// noopLocker satisfies BarberLocker without serializing anything.
type noopLocker struct{}

func (noopLocker) Lock(context.Context, uint) (func(), error) {
	return func() {}, nil
}

func mustTime(s string) time.Time {
	t, err := timezone.ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return t
}
