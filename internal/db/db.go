package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/config"
	"github.com/dapperagenda/barber-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.Unit{},
		&models.Barber{},
		&models.Service{},
		&models.Client{},
		&models.OperatingHours{},
		&models.Appointment{},
		&models.NotificationSettings{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Backstop against the check-then-act race: two concurrent bookings for
	// the same barber and slot cannot both commit. Slots are grid-aligned,
	// so exact-start collisions are the realistic duplicate.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_barber_start_active
        ON appointments (barber_id, start_time)
        WHERE status NOT IN ('cancelled', 'no_show')
    `)

	return db
}
