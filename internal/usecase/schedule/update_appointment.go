package schedule

import (
	"context"

	"github.com/dapperagenda/barber-api/internal/audit"
	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

// Optional fields: nil means "leave unchanged".
type UpdateAppointmentInput struct {
	BarbershopID  uint
	AppointmentID uint

	DateTime  *string // YYYY-MM-DDTHH:mm
	Status    *string
	Notes     *string
	ClientID  *uint
	BarberID  *uint
	ServiceID *uint
}

type UpdateAppointment struct {
	repo     domain.Repository
	validate *ValidateBooking
	locker   BarberLocker
	audit    *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	validate *ValidateBooking,
	locker BarberLocker,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		validate: validate,
		locker:   locker,
		audit:    audit,
	}
}

// Execute applies a partial update. Whenever the change moves the appointment
// in time (new start, new barber, or a service with a different duration) the
// business-hours and conflict gates run again, excluding the appointment
// itself from the overlap scan.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.BarbershopID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	revalidate := false

	if in.DateTime != nil {
		start, err := timezone.ParseDateTime(*in.DateTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		ap.StartTime = start
		revalidate = true
	}

	if in.BarberID != nil && *in.BarberID != ap.BarberID {
		barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, 0, *in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		if barber.UnitID != ap.UnitID {
			return nil, httperr.ErrBusinessMsg(
				"barber_not_in_unit",
				"Barbeiro não pertence à unidade selecionada",
			)
		}
		ap.BarberID = barber.ID
		revalidate = true
	}

	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		if _, err := uc.repo.GetService(ctx, in.BarbershopID, *in.ServiceID); err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		ap.ServiceID = *in.ServiceID
		revalidate = true
	}

	if in.ClientID != nil {
		if _, err := uc.repo.GetClient(ctx, in.BarbershopID, *in.ClientID); err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = *in.ClientID
	}

	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.Status = *in.Status
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if revalidate && domain.Status(ap.Status).Blocks() {
		service, err := uc.repo.GetService(ctx, in.BarbershopID, ap.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}

		release, err := uc.locker.Lock(ctx, ap.BarberID)
		if err != nil {
			return nil, err
		}
		defer release()

		if err := uc.validate.Execute(
			ctx,
			ap.UnitID,
			ap.BarberID,
			ap.StartTime,
			service.DurationMin,
			ap.ID,
		); err != nil {
			return nil, err
		}

		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	} else {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "appointment_updated",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
