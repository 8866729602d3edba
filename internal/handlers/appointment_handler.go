package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/timezone"
	usecase "github.com/dapperagenda/barber-api/internal/usecase/schedule"
)

type AppointmentHandler struct {
	db           *gorm.DB
	create       *usecase.CreateAppointment
	update       *usecase.UpdateAppointment
	availability *usecase.GetAvailability
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *usecase.CreateAppointment,
	update *usecase.UpdateAppointment,
	availability *usecase.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		create:       create,
		update:       update,
		availability: availability,
	}
}

type AppointmentCreateRequest struct {
	UnitID    uint   `json:"unit_id" binding:"required"`
	BarberID  uint   `json:"barber_id" binding:"required"`
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	DateTime  string `json:"date_time" binding:"required"`
	Notes     string `json:"notes"`
}

type AppointmentUpdateRequest struct {
	DateTime  *string `json:"date_time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
	ClientID  *uint   `json:"client_id"`
	BarberID  *uint   `json:"barber_id"`
	ServiceID *uint   `json:"service_id"`
}

// List supports the agenda screen: filter by unit, barber, status, a single
// date (São Paulo civil day) and free-text client search.
func (h *AppointmentHandler) List(c *gin.Context) {
	shopID := middleware.ShopID(c)

	query := h.db.
		Preload("Unit").
		Preload("Barber").
		Preload("Client").
		Preload("Service").
		Where("appointments.barbershop_id = ?", shopID)

	if unitID := c.Query("unit_id"); unitID != "" {
		query = query.Where("appointments.unit_id = ?", unitID)
	}
	if barberID := c.Query("barber_id"); barberID != "" {
		query = query.Where("appointments.barber_id = ?", barberID)
	}
	if status := c.Query("status"); status != "" {
		if !domain.IsValidStatus(status) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		query = query.Where("appointments.status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		dayStart, dayEnd, err := timezone.DayRange(date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
			return
		}
		query = query.Where(
			"appointments.start_time >= ? AND appointments.start_time < ?",
			dayStart, dayEnd,
		)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN clients ON clients.id = appointments.client_id").
			Where("LOWER(clients.name) LIKE ? OR clients.phone LIKE ?", like, "%"+search+"%")
	}

	var appointments []models.Appointment
	if err := query.Order("appointments.start_time ASC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  appointments,
		"total": len(appointments),
	})
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var req AppointmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Unidade, barbeiro, cliente, serviço e horário são obrigatórios.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		BarbershopID: shopID,
		UnitID:       req.UnitID,
		BarberID:     req.BarberID,
		ClientID:     req.ClientID,
		ServiceID:    req.ServiceID,
		DateTime:     req.DateTime,
		Notes:        req.Notes,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	shopID := middleware.ShopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var req AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), usecase.UpdateAppointmentInput{
		BarbershopID:  shopID,
		AppointmentID: uint(id),
		DateTime:      req.DateTime,
		Status:        req.Status,
		Notes:         req.Notes,
		ClientID:      req.ClientID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	shopID := middleware.ShopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Availability answers the agenda's slot picker.
// GET /api/me/availability?unit_id=&barber_id=&service_id=&date=YYYY-MM-DD
func (h *AppointmentHandler) Availability(c *gin.Context) {
	shopID := middleware.ShopID(c)

	in, ok := bindAvailabilityQuery(c, shopID)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  in.Date,
		"slots": slots,
	})
}

func bindAvailabilityQuery(c *gin.Context, shopID uint) (domain.AvailabilityInput, bool) {
	unitID, err1 := strconv.ParseUint(c.Query("unit_id"), 10, 64)
	barberID, err2 := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	serviceID, err3 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	date := c.Query("date")

	if err1 != nil || err2 != nil || err3 != nil || date == "" {
		httperr.BadRequest(
			c,
			"invalid_request",
			"Parâmetros unit_id, barber_id, service_id e date são obrigatórios.",
		)
		return domain.AvailabilityInput{}, false
	}

	return domain.AvailabilityInput{
		BarbershopID: shopID,
		UnitID:       uint(unitID),
		BarberID:     uint(barberID),
		ServiceID:    uint(serviceID),
		Date:         date,
	}, true
}
