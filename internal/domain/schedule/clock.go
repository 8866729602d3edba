package schedule

import (
	"time"

	"github.com/dapperagenda/barber-api/internal/timezone"
)

// Clock abstracts "now" so availability tests can pin the current day and
// wall-clock minute.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
