package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/httpresp"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
)

type UnitHandler struct {
	db *gorm.DB
}

func NewUnitHandler(db *gorm.DB) *UnitHandler {
	return &UnitHandler{db: db}
}

type UnitCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
}

type UnitUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type DayHoursConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Open      bool   `json:"open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type HoursUpdateRequest struct {
	Hours []DayHoursConfig `json:"hours" binding:"required"`
}

func (h *UnitHandler) findUnit(c *gin.Context) (*models.Unit, bool) {
	shopID := middleware.ShopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_unit_id", "Unidade inválida.")
		return nil, false
	}

	var unit models.Unit
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&unit).Error; err != nil {
		httperr.NotFound(c, "unit_not_found", "Unidade não encontrada.")
		return nil, false
	}
	return &unit, true
}

func (h *UnitHandler) List(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var units []models.Unit
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("created_at ASC").
		Find(&units).Error; err != nil {
		httperr.Internal(c, "failed_to_list_units", "Erro ao listar unidades.")
		return
	}

	httpresp.List(c, units)
}

func (h *UnitHandler) Create(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var req UnitCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e endereço são obrigatórios.")
		return
	}

	unit := models.Unit{
		BarbershopID: shopID,
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&unit).Error; err != nil {
			return err
		}
		week := defaultWeekSchedule(unit.ID)
		return tx.Create(&week).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_unit", "Erro ao criar unidade.")
		return
	}

	c.JSON(http.StatusCreated, unit)
}

func (h *UnitHandler) Update(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	var req UnitUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Address != nil {
		unit.Address = *req.Address
	}
	if req.Phone != nil {
		unit.Phone = *req.Phone
	}

	if err := h.db.Save(unit).Error; err != nil {
		httperr.Internal(c, "failed_to_update_unit", "Erro ao atualizar unidade.")
		return
	}

	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) Delete(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	if err := h.db.Delete(unit).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_unit", "Erro ao remover unidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (h *UnitHandler) GetHours(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	var hours []models.OperatingHours
	if err := h.db.
		Where("unit_id = ?", unit.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao carregar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateHours replaces the unit's weekly schedule wholesale: one upsert per
// weekday keyed on (unit, weekday).
func (h *UnitHandler) UpdateHours(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	var req HoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campo \"hours\" é obrigatório.")
		return
	}

	rows := make([]models.OperatingHours, 0, len(req.Hours))
	for _, day := range req.Hours {
		rows = append(rows, models.OperatingHours{
			UnitID:    unit.ID,
			Weekday:   day.Weekday,
			Open:      day.Open,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		})
	}

	if len(rows) > 0 {
		err := h.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unit_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"open", "start_time", "end_time", "updated_at"}),
		}).Create(&rows).Error
		if err != nil {
			httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar horários.")
			return
		}
	}

	c.JSON(http.StatusOK, rows)
}
