package schedule

import (
	"context"
	"time"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

// ValidateBooking is the gate in front of every appointment write that
// touches start time, barber or service. Business hours are checked first,
// then conflicts, and the caller must hold the write (or a per-barber lock)
// until the mutation commits.
type ValidateBooking struct {
	repo domain.Repository
}

func NewValidateBooking(repo domain.Repository) *ValidateBooking {
	return &ValidateBooking{repo: repo}
}

func (uc *ValidateBooking) Execute(
	ctx context.Context,
	unitID uint,
	barberID uint,
	start time.Time,
	durationMin int,
	excludeID uint,
) error {

	hours, err := uc.repo.GetOperatingHours(ctx, unitID, timezone.Weekday(start))
	if err != nil {
		return err
	}
	if err := domain.CheckWithinHours(hours, start, durationMin); err != nil {
		return err
	}

	dayStart, dayEnd := timezone.DayBoundsOf(start)
	existing, err := uc.repo.ListBarberDay(ctx, barberID, dayStart, dayEnd, excludeID)
	if err != nil {
		return err
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)
	if domain.HasOverlap(start, end, existing) {
		return httperr.ErrBusinessMsg(
			"scheduling_conflict",
			"Barbeiro já possui agendamento neste horário",
		)
	}

	return nil
}
