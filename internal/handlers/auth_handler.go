package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dapperagenda/barber-api/internal/config"
	"github.com/dapperagenda/barber-api/internal/middleware"
	"github.com/dapperagenda/barber-api/internal/models"
	"github.com/dapperagenda/barber-api/internal/slug"
	"github.com/dapperagenda/barber-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	CNPJ     string `json:"cnpj" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// defaultWeekSchedule is seeded for every new unit: closed Sundays, longer
// Fridays, earlier Saturdays.
func defaultWeekSchedule(unitID uint) []models.OperatingHours {
	return []models.OperatingHours{
		{UnitID: unitID, Weekday: 0, Open: false, StartTime: "09:00", EndTime: "13:00"},
		{UnitID: unitID, Weekday: 1, Open: true, StartTime: "09:00", EndTime: "19:00"},
		{UnitID: unitID, Weekday: 2, Open: true, StartTime: "09:00", EndTime: "19:00"},
		{UnitID: unitID, Weekday: 3, Open: true, StartTime: "09:00", EndTime: "19:00"},
		{UnitID: unitID, Weekday: 4, Open: true, StartTime: "09:00", EndTime: "19:00"},
		{UnitID: unitID, Weekday: 5, Open: true, StartTime: "09:00", EndTime: "20:00"},
		{UnitID: unitID, Weekday: 6, Open: true, StartTime: "08:00", EndTime: "17:00"},
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.Barbershop{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "email_already_registered"})
		return
	}

	shopSlug, err := slug.Unique(req.Name, func(candidate string) (bool, error) {
		var n int64
		err := h.db.Model(&models.Barbershop{}).Where("slug = ?", candidate).Count(&n).Error
		return n > 0, err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_name"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	shop := models.Barbershop{
		Name:         req.Name,
		Slug:         shopSlug,
		Email:        email,
		PasswordHash: string(hashed),
		CNPJ:         req.CNPJ,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&shop).Error; err != nil {
			return err
		}

		unit := models.Unit{
			BarbershopID: shop.ID,
			Name:         "Matriz",
			Address:      req.Address,
			Phone:        req.Phone,
		}
		if err := tx.Create(&unit).Error; err != nil {
			return err
		}

		week := defaultWeekSchedule(unit.ID)
		if err := tx.Create(&week).Error; err != nil {
			return err
		}

		settings := models.NotificationSettings{
			BarbershopID:      shop.ID,
			EmailConfirmation: true,
			SMSReminder:       true,
			ReminderHours:     2,
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barbershop"})
		return
	}

	token, err := h.generateToken(&shop)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barbershop": shop,
		"token":      token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var shop models.Barbershop
	if err := h.db.Where("email = ?", email).First(&shop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(shop.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&shop)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"token":      token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	shopID := middleware.ShopID(c)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barbershop_not_found"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(shop *models.Barbershop) (string, error) {
	claims := jwt.MapClaims{
		"sub":          shop.ID,
		"barbershopId": shop.ID,
		"exp":          time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
