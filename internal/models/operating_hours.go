package models

import "time"

// OperatingHours holds one row per (unit, weekday). Weekday follows the
// 0=Sunday .. 6=Saturday convention. When Open is false the start/end times
// are kept for display but are not authoritative for slot generation.
type OperatingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UnitID  uint `gorm:"uniqueIndex:idx_hours_unit_weekday" json:"unit_id"`
	Weekday int  `gorm:"uniqueIndex:idx_hours_unit_weekday" json:"weekday"`

	Open      bool   `json:"open"`
	StartTime string `gorm:"size:5" json:"start_time"` // "HH:mm"
	EndTime   string `gorm:"size:5" json:"end_time"`   // "HH:mm"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
