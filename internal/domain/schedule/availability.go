package schedule

type AvailabilityInput struct {
	BarbershopID uint
	UnitID       uint
	BarberID     uint
	ServiceID    uint
	Date         string // YYYY-MM-DD, civil
}
