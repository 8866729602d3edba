package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/audit"
	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/httpresp"
	"github.com/dapperagenda/barber-api/internal/media"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/storage"
)

const maxPhotoUploadBytes = 8 << 20

type BarberHandler struct {
	db      *gorm.DB
	storage storage.Driver
	audit   *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, driver storage.Driver, dispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, storage: driver, audit: dispatcher}
}

type BarberCreateRequest struct {
	UnitID uint   `json:"unit_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type BarberUpdateRequest struct {
	UnitID *uint   `json:"unit_id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

func (h *BarberHandler) findBarber(c *gin.Context) (*models.Barber, bool) {
	shopID := middleware.ShopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return nil, false
	}
	return &barber, true
}

func (h *BarberHandler) unitBelongsToShop(shopID, unitID uint) bool {
	var n int64
	h.db.Model(&models.Unit{}).
		Where("id = ? AND barbershop_id = ?", unitID, shopID).
		Count(&n)
	return n > 0
}

func (h *BarberHandler) List(c *gin.Context) {
	shopID := middleware.ShopID(c)

	query := h.db.Where("barbershop_id = ?", shopID)
	if unitID := c.Query("unit_id"); unitID != "" {
		query = query.Where("unit_id = ?", unitID)
	}

	var barbers []models.Barber
	if err := query.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var req BarberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e unidade são obrigatórios.")
		return
	}

	if !h.unitBelongsToShop(shopID, req.UnitID) {
		httperr.NotFound(c, "unit_not_found", "Unidade não encontrada.")
		return
	}

	barber := models.Barber{
		BarbershopID: shopID,
		UnitID:       req.UnitID,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Status:       models.BarberAvailable,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao cadastrar barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		Action:       "barber_created",
		Entity:       "barber",
		EntityID:     &barber.ID,
	})

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	shopID := middleware.ShopID(c)

	barber, ok := h.findBarber(c)
	if !ok {
		return
	}

	var req BarberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.UnitID != nil {
		if !h.unitBelongsToShop(shopID, *req.UnitID) {
			httperr.NotFound(c, "unit_not_found", "Unidade não encontrada.")
			return
		}
		barber.UnitID = *req.UnitID
	}
	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Email != nil {
		barber.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Status != nil {
		if *req.Status != models.BarberAvailable && *req.Status != models.BarberUnavailable {
			httperr.BadRequest(c, "invalid_status", "Status de barbeiro inválido.")
			return
		}
		barber.Status = *req.Status
	}

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	shopID := middleware.ShopID(c)

	barber, ok := h.findBarber(c)
	if !ok {
		return
	}

	if err := h.db.Delete(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		Action:       "barber_deleted",
		Entity:       "barber",
		EntityID:     &barber.ID,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadPhoto accepts a multipart "photo" field, normalizes it to WebP and
// stores it under the shop's prefix.
func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	shopID := middleware.ShopID(c)

	barber, ok := h.findBarber(c)
	if !ok {
		return
	}

	if h.storage == nil {
		httperr.Internal(c, "storage_unavailable", "Armazenamento de fotos não configurado.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie a imagem no campo \"photo\".")
		return
	}
	defer file.Close()

	encoded, err := media.ProcessPhoto(http.MaxBytesReader(c.Writer, file, maxPhotoUploadBytes))
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Imagem inválida. Envie um JPEG ou PNG.")
		return
	}

	path := fmt.Sprintf("barbers/%d/%d.webp", shopID, barber.ID)
	url, err := h.storage.Upload(c.Request.Context(), bytes.NewReader(encoded), path, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao salvar a foto.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.Model(barber).Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}
