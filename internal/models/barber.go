package models

import "time"

const (
	BarberAvailable   = "available"
	BarberUnavailable = "unavailable"
)

// Barber works at exactly one unit of the shop.
type Barber struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`
	UnitID       uint `gorm:"index" json:"unit_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Status   string `gorm:"size:20;default:'available'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
