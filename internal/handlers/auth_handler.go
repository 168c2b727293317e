package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salusbook/api-prenotazioni/internal/config"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/fiscalcode"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
	"github.com/salusbook/api-prenotazioni/internal/validators"
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
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`

	BirthDate     string `json:"birth_date" binding:"required"`
	Sex           string `json:"sex" binding:"required"`
	BirthCountry  string `json:"birth_country" binding:"required"`
	BirthProvince string `json:"birth_province" binding:"required"`
	BirthTown     string `json:"birth_town" binding:"required"`

	FiscalCode string `json:"fiscal_code"`

	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`

	DataConsent bool `json:"data_consent"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		writeBusinessError(c, httperr.ErrBusiness("password_mismatch"))
		return
	}

	if _, err := domain.CanonicalDate(req.BirthDate); err != nil {
		writeBusinessError(c, httperr.ErrBusiness("invalid_birth_date"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		writeBusinessError(c, httperr.ErrBusiness("invalid_email_domain"))
		return
	}

	// Sem codice fiscale no payload, derivamos dos dados anagráficos
	code := strings.ToUpper(strings.TrimSpace(req.FiscalCode))
	if code == "" {
		generated, err := fiscalcode.Generate(
			req.FirstName,
			req.LastName,
			req.BirthDate,
			req.Sex,
			req.BirthTown,
		)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		code = generated
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		writeBusinessError(c, httperr.ErrBusiness("email_in_use"))
		return
	}

	h.db.Model(&models.User{}).Where("fiscal_code = ?", code).Count(&count)
	if count > 0 {
		writeBusinessError(c, httperr.ErrBusiness("fiscal_code_in_use"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Unexpected error.")
		return
	}

	user := models.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BirthDate:     req.BirthDate,
		Sex:           req.Sex,
		BirthCountry:  req.BirthCountry,
		BirthProvince: req.BirthProvince,
		BirthTown:     req.BirthTown,
		FiscalCode:    code,
		Email:         email,
		Phone:         req.Phone,
		PasswordHash:  string(hashed),
		Role:          "client",
		DataConsent:   req.DataConsent,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Unexpected error.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Unexpected error.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"first_name":  user.FirstName,
			"last_name":   user.LastName,
			"email":       user.Email,
			"fiscal_code": user.FiscalCode,
			"role":        user.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role,
		},
		"token": token,
	})
}

// UpdateRole promove/demove um usuário; restrito a admins na rota.
func (h *AuthHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		writeBusinessError(c, httperr.ErrBusiness("user_not_found"))
		return
	}

	user.Role = req.Role
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_role", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role,
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
