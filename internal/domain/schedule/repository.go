package schedule

import (
	"context"
	"time"

	"github.com/dapperagenda/barber-api/internal/models"
)

// Repository is the persistence surface the scheduling engine consumes.
// Every read is tenant-scoped; a record owned by another tenant behaves as
// if it did not exist.
type Repository interface {
	// -------- Reference entities --------
	GetUnit(
		ctx context.Context,
		barbershopID uint,
		unitID uint,
	) (*models.Unit, error)

	// GetBarber scopes by unit as well when unitID != 0.
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		unitID uint,
		barberID uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetClient(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Operating hours --------
	// GetOperatingHours returns (nil, nil) when no record exists for the
	// weekday; callers treat that as closed.
	GetOperatingHours(
		ctx context.Context,
		unitID uint,
		weekday int,
	) (*models.OperatingHours, error)

	// -------- Appointments --------
	// ListBarberDay returns the barber's blocking appointments whose start
	// falls in [dayStart, dayEnd), each with its service's current duration.
	// excludeID skips the appointment being re-validated; zero skips nothing.
	ListBarberDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
		excludeID uint,
	) ([]BusyAppointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
