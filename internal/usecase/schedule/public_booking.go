package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/dapperagenda/barber-api/internal/audit"
	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/payment"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

type PublicBookingInput struct {
	Barbershop *models.Barbershop

	ClientName  string
	ClientPhone string
	ClientEmail string

	UnitID    uint
	BarberID  uint
	ServiceID uint

	DateTime string // YYYY-MM-DDTHH:mm
	Notes    string
}

type PublicBookingResult struct {
	Appointment *models.Appointment `json:"appointment"`
	PaymentURL  string              `json:"payment_url,omitempty"`
}

// PublicBooking is the self-service path behind the tenant's booking page.
// It upserts the client by phone, runs the same validation gate as the staff
// path and, when the shop charges a deposit, attaches a payment link.
type PublicBooking struct {
	repo     domain.Repository
	validate *ValidateBooking
	locker   BarberLocker
	deposits *payment.Deposits
	audit    *audit.Dispatcher
}

func NewPublicBooking(
	repo domain.Repository,
	validate *ValidateBooking,
	locker BarberLocker,
	deposits *payment.Deposits,
	audit *audit.Dispatcher,
) *PublicBooking {
	return &PublicBooking{
		repo:     repo,
		validate: validate,
		locker:   locker,
		deposits: deposits,
		audit:    audit,
	}
}

func (uc *PublicBooking) Execute(
	ctx context.Context,
	in PublicBookingInput,
) (*PublicBookingResult, error) {

	shopID := in.Barbershop.ID

	unit, err := uc.repo.GetUnit(ctx, shopID, in.UnitID)
	if err != nil {
		return nil, httperr.ErrBusiness("unit_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, shopID, in.UnitID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(
			"barber_not_found",
			"Barbeiro não encontrado nesta unidade",
		)
	}

	service, err := uc.repo.GetService(ctx, shopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start, err := timezone.ParseDateTime(in.DateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	release, err := uc.locker.Lock(ctx, barber.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.validate.Execute(ctx, unit.ID, barber.ID, start, service.DurationMin, 0); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetOrCreateClient(ctx, shopID, in.ClientName, in.ClientPhone, in.ClientEmail)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarbershopID: shopID,
		UnitID:       unit.ID,
		BarberID:     barber.ID,
		ClientID:     client.ID,
		ServiceID:    service.ID,
		StartTime:    start,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
		PublicCode:   uuid.NewString(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	result := &PublicBookingResult{Appointment: ap}

	if uc.deposits != nil && in.Barbershop.DepositPrice > 0 {
		url, err := uc.deposits.CreatePreference(ctx, payment.DepositRequest{
			Title:     "Sinal de agendamento - " + service.Name,
			Amount:    in.Barbershop.DepositPrice,
			Reference: ap.PublicCode,
		})
		if err == nil {
			result.PaymentURL = url
		}
		// a payment gateway hiccup must not undo a confirmed booking
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		Action:       "public_booking_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return result, nil
}
