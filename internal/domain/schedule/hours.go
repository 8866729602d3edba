package schedule

import (
	"fmt"
	"time"

	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/timezone"
)

// CheckWithinHours validates the interval [start, start+duration) against the
// unit's hours for that civil day. A missing record and open=false are the
// same thing: closed. Failures carry the open/close bounds so callers can
// show them without a second lookup.
func CheckWithinHours(hours *models.OperatingHours, start time.Time, durationMin int) error {
	if hours == nil || !hours.Open || hours.StartTime == "" || hours.EndTime == "" {
		return httperr.ErrBusinessMsg(
			"outside_business_hours",
			"Unidade fechada neste dia da semana",
		)
	}

	openMin, err := ParseHM(hours.StartTime)
	if err != nil {
		return httperr.ErrBusinessMsg("outside_business_hours", "Horário de funcionamento inválido")
	}
	closeMin, err := ParseHM(hours.EndTime)
	if err != nil {
		return httperr.ErrBusinessMsg("outside_business_hours", "Horário de funcionamento inválido")
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)

	outside := func() error {
		return httperr.ErrBusinessMsg(
			"outside_business_hours",
			fmt.Sprintf("Horário fora do expediente da unidade (%s - %s)", hours.StartTime, hours.EndTime),
		)
	}

	// An appointment spilling into the next civil day can never fit.
	if timezone.CivilDate(end) != timezone.CivilDate(start) && timezone.MinutesOfDay(end) != 0 {
		return outside()
	}

	startMin := timezone.MinutesOfDay(start)
	endMin := timezone.MinutesOfDay(end)
	if endMin == 0 && durationMin > 0 {
		endMin = 24 * 60
	}

	if startMin < openMin || endMin > closeMin {
		return outside()
	}
	return nil
}
