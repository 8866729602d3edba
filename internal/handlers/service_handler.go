package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dapperagenda/barber-api/internal/domain/schedule"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/httpresp"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=5,max=480"`
}

type ServiceUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
}

func (h *ServiceHandler) findService(c *gin.Context) (*models.Service, bool) {
	shopID := middleware.ShopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return nil, false
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return nil, false
	}
	return &svc, true
}

func (h *ServiceHandler) List(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var req ServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e duração são obrigatórios.")
		return
	}

	svc := models.Service{
		BarbershopID: shopID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationMin:  req.DurationMin,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// Update edits the service in place. Changing duration_min immediately
// changes how every existing appointment of this service is measured.
func (h *ServiceHandler) Update(c *gin.Context) {
	svc, ok := h.findService(c)
	if !ok {
		return
	}

	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 5 || *req.DurationMin > 480 {
			httperr.BadRequest(c, "invalid_duration", "Duração deve estar entre 5 e 480 minutos.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	svc, ok := h.findService(c)
	if !ok {
		return
	}

	var inUse int64
	h.db.Model(&models.Appointment{}).
		Where("service_id = ? AND status IN ?", svc.ID, []string{
			string(domain.StatusAwaiting),
			string(domain.StatusInProgress),
		}).
		Count(&inUse)
	if inUse > 0 {
		httperr.Conflict(c, "service_in_use", "Serviço possui agendamentos ativos.")
		return
	}

	if err := h.db.Delete(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
