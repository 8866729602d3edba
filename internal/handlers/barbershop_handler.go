package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/audit"
	"github.com/dapperagenda/barber-api/internal/cache"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
)

type BarbershopHandler struct {
	db    *gorm.DB
	cache *cache.Client
	audit *audit.Dispatcher
}

func NewBarbershopHandler(db *gorm.DB, cacheClient *cache.Client, dispatcher *audit.Dispatcher) *BarbershopHandler {
	return &BarbershopHandler{db: db, cache: cacheClient, audit: dispatcher}
}

type BarbershopUpdateRequest struct {
	Name         *string  `json:"name"`
	Slug         *string  `json:"slug"`
	CNPJ         *string  `json:"cnpj"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	DepositPrice *float64 `json:"deposit_price"`
}

type NotificationUpdateRequest struct {
	EmailConfirmation *bool `json:"email_confirmation"`
	SMSReminder       *bool `json:"sms_reminder"`
	ReminderHours     *int  `json:"reminder_hours"`
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req BarbershopUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	oldSlug := shop.Slug

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Slug != nil {
		newSlug := strings.ToLower(strings.TrimSpace(*req.Slug))
		if newSlug != shop.Slug {
			var count int64
			h.db.Model(&models.Barbershop{}).
				Where("slug = ? AND id <> ?", newSlug, shop.ID).
				Count(&count)
			if count > 0 {
				httperr.Conflict(c, "slug_already_exists", "Este endereço já está em uso.")
				return
			}
			shop.Slug = newSlug
		}
	}
	if req.CNPJ != nil {
		shop.CNPJ = *req.CNPJ
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.DepositPrice != nil {
		shop.DepositPrice = *req.DepositPrice
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao atualizar a barbearia.")
		return
	}

	if h.cache != nil && oldSlug != shop.Slug {
		h.cache.InvalidateSlug(c.Request.Context(), oldSlug)
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_updated",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	c.JSON(http.StatusOK, shop)
}

// CheckSlug previews whether a public address is free to claim.
func (h *BarbershopHandler) CheckSlug(c *gin.Context) {
	shopID := middleware.ShopID(c)

	candidate := strings.ToLower(strings.TrimSpace(c.Query("slug")))
	if candidate == "" {
		httperr.BadRequest(c, "missing_slug", "Slug é obrigatório.")
		return
	}

	var existing models.Barbershop
	err := h.db.Select("id").Where("slug = ?", candidate).First(&existing).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_check_slug", "Erro ao verificar o endereço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available": err == gorm.ErrRecordNotFound || existing.ID == shopID,
	})
}

// --------------------------------------------------
// Notification settings
// --------------------------------------------------

func (h *BarbershopHandler) GetNotifications(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var settings models.NotificationSettings
	if err := h.db.Where("barbershop_id = ?", shopID).First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configuração de notificação não encontrada.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *BarbershopHandler) UpdateNotifications(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var req NotificationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var settings models.NotificationSettings
	err := h.db.Where("barbershop_id = ?", shopID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.NotificationSettings{
			BarbershopID:      shopID,
			EmailConfirmation: true,
			SMSReminder:       true,
			ReminderHours:     2,
		}
	} else if err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Erro ao carregar configurações.")
		return
	}

	if req.EmailConfirmation != nil {
		settings.EmailConfirmation = *req.EmailConfirmation
	}
	if req.SMSReminder != nil {
		settings.SMSReminder = *req.SMSReminder
	}
	if req.ReminderHours != nil {
		settings.ReminderHours = *req.ReminderHours
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar configurações.")
		return
	}

	c.JSON(http.StatusOK, settings)
}
