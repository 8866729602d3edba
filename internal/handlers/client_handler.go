package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/httperr"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

type ClientUpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// ClientWithStats is the admin list row: the client plus how many
// appointments they have booked with the shop.
type ClientWithStats struct {
	models.Client
	AppointmentCount int64 `json:"appointment_count"`
}

func (h *ClientHandler) findClient(c *gin.Context) (*models.Client, bool) {
	shopID := middleware.ShopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return nil, false
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return nil, false
	}
	return &client, true
}

func (h *ClientHandler) List(c *gin.Context) {
	shopID := middleware.ShopID(c)

	query := h.db.
		Table("clients").
		Select("clients.*, COUNT(appointments.id) AS appointment_count").
		Joins("LEFT JOIN appointments ON appointments.client_id = clients.id").
		Where("clients.barbershop_id = ?", shopID).
		Group("clients.id")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(clients.name) LIKE ? OR clients.phone LIKE ?",
			like, "%"+search+"%",
		)
	}

	var clients []ClientWithStats
	if err := query.Order("clients.name ASC").Scan(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  clients,
		"total": len(clients),
	})
}

func (h *ClientHandler) Create(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var req ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e telefone são obrigatórios.")
		return
	}

	phone := strings.TrimSpace(req.Phone)

	var count int64
	h.db.Model(&models.Client{}).
		Where("barbershop_id = ? AND phone = ?", shopID, phone).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "client_already_exists", "Já existe um cliente com este telefone.")
		return
	}

	client := models.Client{
		BarbershopID: shopID,
		Name:         req.Name,
		Phone:        phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	shopID := middleware.ShopID(c)

	client, ok := h.findClient(c)
	if !ok {
		return
	}

	var req ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != client.Phone {
			var count int64
			h.db.Model(&models.Client{}).
				Where("barbershop_id = ? AND phone = ? AND id <> ?", shopID, phone, client.ID).
				Count(&count)
			if count > 0 {
				httperr.Conflict(c, "client_already_exists", "Já existe um cliente com este telefone.")
				return
			}
			client.Phone = phone
		}
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if err := h.db.Save(client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	if err := h.db.Delete(client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
