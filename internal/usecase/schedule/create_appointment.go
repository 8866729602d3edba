package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/dapperagenda/barber-api/internal/audit"
	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	UnitID       uint
	BarberID     uint
	ClientID     uint
	ServiceID    uint

	DateTime string // YYYY-MM-DDTHH:mm, São Paulo wall clock
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	validate *ValidateBooking
	locker   BarberLocker
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	validate *ValidateBooking,
	locker BarberLocker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		validate: validate,
		locker:   locker,
		audit:    audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	unit, err := uc.repo.GetUnit(ctx, in.BarbershopID, in.UnitID)
	if err != nil {
		return nil, httperr.ErrBusiness("unit_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, 0, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if barber.UnitID != unit.ID {
		return nil, httperr.ErrBusinessMsg(
			"barber_not_in_unit",
			"Barbeiro não pertence à unidade selecionada",
		)
	}

	if _, err := uc.repo.GetClient(ctx, in.BarbershopID, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start, err := timezone.ParseDateTime(in.DateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	release, err := uc.locker.Lock(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.validate.Execute(ctx, in.UnitID, in.BarberID, start, service.DurationMin, 0); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		UnitID:       in.UnitID,
		BarberID:     in.BarberID,
		ClientID:     in.ClientID,
		ServiceID:    in.ServiceID,
		StartTime:    start,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
		PublicCode:   uuid.NewString(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
