package schedule

import "context"

// BarberLocker serializes the validate+write window per barber. Without it
// two concurrent bookings for the same slot can both pass validation
// (check-then-act); the storage layer's unique index on (barber, start)
// remains as a backstop.
type BarberLocker interface {
	// Lock blocks until the barber's lock is held and returns a release
	// function. Release is best-effort; locks expire on their own.
	Lock(ctx context.Context, barberID uint) (func(), error)
}
