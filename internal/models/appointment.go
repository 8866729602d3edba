package models

import "time"

// Appointment stores only the start instant. Its length is always derived
// from the referenced service's current duration, so a service edit changes
// how existing appointments are measured in conflict checks.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UnitID uint `json:"unit_id"`
	Unit   Unit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"unit"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartTime time.Time `gorm:"index" json:"start_time"`

	Status string `gorm:"size:20;default:'awaiting'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	// Reference handed to anonymous clients booking through the public page.
	PublicCode string `gorm:"size:36;index" json:"public_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
