package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/cache"
	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/timezone"
	usecase "github.com/dapperagenda/barber-api/internal/usecase/schedule"
)

// PublicHandler serves the anonymous booking page. Tenants are addressed by
// slug; resolution goes through the cache first.
type PublicHandler struct {
	db           *gorm.DB
	cache        *cache.Client
	availability *usecase.GetAvailability
	booking      *usecase.PublicBooking
}

func NewPublicHandler(
	db *gorm.DB,
	cacheClient *cache.Client,
	availability *usecase.GetAvailability,
	booking *usecase.PublicBooking,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		cache:        cacheClient,
		availability: availability,
		booking:      booking,
	}
}

type PublicBookRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`

	UnitID    uint   `json:"unit_id" binding:"required"`
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	DateTime  string `json:"date_time" binding:"required"`
	Notes     string `json:"notes"`
}

// PublicShopView is the slug page payload. Credentials and billing fields
// never leave the server.
type PublicShopView struct {
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	DepositPrice float64       `json:"deposit_price"`
	Units        []models.Unit `json:"units"`
}

func (h *PublicHandler) resolveShop(c *gin.Context) (*models.Barbershop, bool) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	if slug == "" {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}

	ctx := c.Request.Context()

	if h.cache != nil {
		if id := h.cache.GetShopID(ctx, slug); id != 0 {
			var shop models.Barbershop
			if err := h.db.First(&shop, id).Error; err == nil && shop.Slug == slug {
				return &shop, true
			}
			h.cache.InvalidateSlug(ctx, slug)
		}
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}

	if h.cache != nil {
		h.cache.SetShopID(ctx, slug, shop.ID)
	}
	return &shop, true
}

func (h *PublicHandler) GetShop(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	var units []models.Unit
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("created_at ASC").
		Find(&units).Error; err != nil {
		httperr.Internal(c, "failed_to_load_units", "Erro ao carregar unidades.")
		return
	}

	c.JSON(http.StatusOK, PublicShopView{
		Name:         shop.Name,
		Slug:         shop.Slug,
		Phone:        shop.Phone,
		Address:      shop.Address,
		DepositPrice: shop.DepositPrice,
		Units:        units,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListUnitBarbers only exposes barbers currently marked available.
func (h *PublicHandler) ListUnitBarbers(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	unitID, err := strconv.ParseUint(c.Param("unitId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_unit_id", "Unidade inválida.")
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ? AND unit_id = ? AND status = ?",
			shop.ID, unitID, models.BarberAvailable).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *PublicHandler) GetUnitHours(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	unitID, err := strconv.ParseUint(c.Param("unitId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_unit_id", "Unidade inválida.")
		return
	}

	var n int64
	h.db.Model(&models.Unit{}).
		Where("id = ? AND barbershop_id = ?", unitID, shop.ID).
		Count(&n)
	if n == 0 {
		httperr.NotFound(c, "unit_not_found", "Unidade não encontrada.")
		return
	}

	var hours []models.OperatingHours
	if err := h.db.
		Where("unit_id = ?", unitID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao carregar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	in, ok := bindAvailabilityQuery(c, shop.ID)
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

func (h *PublicHandler) Book(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, telefone, unidade, barbeiro, serviço e horário são obrigatórios.")
		return
	}

	result, err := h.booking.Execute(c.Request.Context(), usecase.PublicBookingInput{
		Barbershop:  shop,
		ClientName:  req.Name,
		ClientPhone: strings.TrimSpace(req.Phone),
		ClientEmail: strings.ToLower(strings.TrimSpace(req.Email)),
		UnitID:      req.UnitID,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		DateTime:    req.DateTime,
		Notes:       req.Notes,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// MyAppointments lets an anonymous client look up their upcoming bookings by
// the email or phone they booked with.
func (h *PublicHandler) MyAppointments(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	phone := strings.TrimSpace(c.Query("phone"))
	if email == "" && phone == "" {
		httperr.BadRequest(c, "missing_contact", "Informe o e-mail ou telefone usado no agendamento.")
		return
	}

	query := h.db.Where("barbershop_id = ?", shop.ID)
	if email != "" {
		query = query.Where("email = ?", email)
	} else {
		query = query.Where("phone = ?", phone)
	}

	var client models.Client
	err := query.First(&client).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, []models.Appointment{})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_find_client", "Erro ao buscar cliente.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Unit").
		Preload("Barber").
		Preload("Service").
		Where("barbershop_id = ? AND client_id = ? AND start_time >= ? AND status NOT IN ?",
			shop.ID, client.ID, timezone.Now(), domain.NonBlockingStatuses()).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}
