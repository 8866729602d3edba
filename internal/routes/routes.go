package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/audit"
	"github.com/dapperagenda/barber-api/internal/cache"
	"github.com/dapperagenda/barber-api/internal/config"
	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/handlers"
	infraRepo "github.com/dapperagenda/barber-api/internal/infra/repository"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/payment"
	"github.com/dapperagenda/barber-api/internal/storage"
	ucSchedule "github.com/dapperagenda/barber-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cacheClient *cache.Client) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var locker ucSchedule.BarberLocker
	if cacheClient != nil {
		locker = cache.NewRedisBarberLocker(cacheClient)
	} else {
		locker = cache.NewLocalBarberLocker()
	}

	storageDriver, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	deposits, err := payment.NewDeposits(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatalf("mercadopago: %v", err)
	}

	// ======================================================
	// USE CASES (SCHEDULING)
	// ======================================================
	validateBookingUC := ucSchedule.NewValidateBooking(scheduleRepo)

	availabilityUC := ucSchedule.NewGetAvailability(scheduleRepo, domain.SystemClock())

	createAppointmentUC := ucSchedule.NewCreateAppointment(
		scheduleRepo,
		validateBookingUC,
		locker,
		auditDispatcher,
	)

	updateAppointmentUC := ucSchedule.NewUpdateAppointment(
		scheduleRepo,
		validateBookingUC,
		locker,
		auditDispatcher,
	)

	publicBookingUC := ucSchedule.NewPublicBooking(
		scheduleRepo,
		validateBookingUC,
		locker,
		deposits,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barbershopHandler := handlers.NewBarbershopHandler(db, cacheClient, auditDispatcher)
	unitHandler := handlers.NewUnitHandler(db)
	barberHandler := handlers.NewBarberHandler(db, storageDriver, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		updateAppointmentUC,
		availabilityUC,
	)

	publicHandler := handlers.NewPublicHandler(db, cacheClient, availabilityUC, publicBookingUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetShop)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/units/:unitId/barbers", publicHandler.ListUnitBarbers)
			publicAPI.GET("/:slug/units/:unitId/hours", publicHandler.GetUnitHours)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/book", publicHandler.Book)
			publicAPI.GET("/:slug/appointments", publicHandler.MyAppointments)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			secured.GET("/me/barbershop", barbershopHandler.Get)
			secured.PATCH("/me/barbershop", barbershopHandler.Update)
			secured.GET("/me/barbershop/slug-check", barbershopHandler.CheckSlug)
			secured.GET("/me/barbershop/notifications", barbershopHandler.GetNotifications)
			secured.PUT("/me/barbershop/notifications", barbershopHandler.UpdateNotifications)

			secured.GET("/me/units", unitHandler.List)
			secured.POST("/me/units", unitHandler.Create)
			secured.PATCH("/me/units/:id", unitHandler.Update)
			secured.DELETE("/me/units/:id", unitHandler.Delete)
			secured.GET("/me/units/:id/hours", unitHandler.GetHours)
			secured.PUT("/me/units/:id/hours", unitHandler.UpdateHours)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id", barberHandler.Update)
			secured.DELETE("/me/barbers/:id", barberHandler.Delete)
			secured.POST("/me/barbers/:id/photo", barberHandler.UploadPhoto)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)

			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
