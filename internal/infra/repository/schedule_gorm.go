package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Reference entities
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUnit(
	ctx context.Context,
	barbershopID uint,
	unitID uint,
) (*models.Unit, error) {

	var unit models.Unit
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", unitID, barbershopID).
		First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	unitID uint,
	barberID uint,
) (*models.Barber, error) {

	q := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", barberID, barbershopID)

	if unitID != 0 {
		q = q.Where("unit_id = ?", unitID)
	}

	var barber models.Barber
	if err := q.First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", clientID, barbershopID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error

	if err == nil {
		// booking again refreshes name/email the client typed
		client.Name = name
		if email != "" {
			client.Email = email
		}
		if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	client = models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOperatingHours(
	ctx context.Context,
	unitID uint,
	weekday int,
) (*models.OperatingHours, error) {

	var hours models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND weekday = ?", unitID, weekday).
		First(&hours).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // absent record means closed, not an error
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBarberDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
	excludeID uint,
) ([]domain.BusyAppointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointments.id", "appointments.start_time", "services.duration_min").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where(
			"appointments.barber_id = ? AND appointments.status NOT IN ? AND appointments.start_time >= ? AND appointments.start_time < ?",
			barberID,
			domain.NonBlockingStatuses(),
			dayStart,
			dayEnd,
		).
		Order("appointments.start_time ASC")

	if excludeID != 0 {
		q = q.Where("appointments.id <> ?", excludeID)
	}

	var rows []struct {
		ID          uint
		StartTime   time.Time
		DurationMin int
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	busy := make([]domain.BusyAppointment, 0, len(rows))
	for _, row := range rows {
		busy = append(busy, domain.BusyAppointment{
			ID:          row.ID,
			Start:       row.StartTime,
			DurationMin: row.DurationMin,
		})
	}
	return busy, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translateConflict(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translateConflict(r.db.WithContext(ctx).Save(ap).Error)
}

// translateConflict maps a unique violation on the active (barber, start)
// index to the same business error the validator produces, so callers see
// one failure mode regardless of which layer caught the race.
func translateConflict(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		pgErr.ConstraintName == "idx_appointments_barber_start_active" {
		return httperr.ErrBusinessMsg(
			"scheduling_conflict",
			"Barbeiro já possui agendamento neste horário",
		)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
