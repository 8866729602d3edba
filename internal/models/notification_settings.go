package models

import "time"

type NotificationSettings struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex" json:"barbershop_id"`

	EmailConfirmation bool `gorm:"default:true" json:"email_confirmation"`
	SMSReminder       bool `gorm:"default:true" json:"sms_reminder"`
	ReminderHours     int  `gorm:"default:2" json:"reminder_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
