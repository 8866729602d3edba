package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusAwaiting   Status = "awaiting"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Blocks reports whether an appointment in this status occupies the barber's
// time for conflict purposes. Cancelled and no-show appointments never block.
func (s Status) Blocks() bool {
	return s != StatusCancelled && s != StatusNoShow
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusAwaiting, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// NonBlockingStatuses is the SQL-side exclusion list used by day queries.
func NonBlockingStatuses() []string {
	return []string{string(StatusCancelled), string(StatusNoShow)}
}

func InitialStatus() Status {
	return StatusAwaiting
}
