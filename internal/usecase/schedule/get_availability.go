package schedule

import (
	"context"
	"time"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock domain.Clock
}

func NewGetAvailability(repo domain.Repository, clock domain.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock}
}

// Execute answers "which HH:mm starts are bookable for this barber, service
// and unit on this date". A closed day yields an empty list, never an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	if _, err := uc.repo.GetUnit(ctx, in.BarbershopID, in.UnitID); err != nil {
		return nil, httperr.ErrBusiness("unit_not_found")
	}
	if _, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.UnitID, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	dayStart, dayEnd, err := timezone.DayRange(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	hours, err := uc.repo.GetOperatingHours(ctx, in.UnitID, timezone.Weekday(dayStart))
	if err != nil {
		return nil, err
	}
	if hours == nil || !hours.Open {
		return []string{}, nil
	}

	candidates := domain.GenerateSlots(hours.StartTime, hours.EndTime, service.DurationMin)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	existing, err := uc.repo.ListBarberDay(ctx, in.BarberID, dayStart, dayEnd, 0)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute

	now := uc.clock.Now()
	isToday := in.Date == timezone.CivilDate(now)
	nowMin := timezone.MinutesOfDay(now)

	slots := make([]string, 0, len(candidates))
	for _, hm := range candidates {
		startMin, _ := domain.ParseHM(hm)

		// today: only slots strictly after the current wall-clock minute
		if isToday && startMin <= nowMin {
			continue
		}

		slotStart := dayStart.Add(time.Duration(startMin) * time.Minute)
		if domain.HasOverlap(slotStart, slotStart.Add(duration), existing) {
			continue
		}

		slots = append(slots, hm)
	}

	return slots, nil
}
