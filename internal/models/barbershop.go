package models

import "time"

// Barbershop is the tenant. The shop record is also the login account:
// staff authenticate with the shop's email and password.
type Barbershop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Slug         string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	CNPJ         string `gorm:"size:20" json:"cnpj"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`

	// Optional deposit charged on public bookings, in BRL. Zero disables it.
	DepositPrice float64 `gorm:"default:0" json:"deposit_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
