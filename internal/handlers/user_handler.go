package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/httpresp"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	BirthDate     *string `json:"birth_date"`
	Sex           *string `json:"sex"`
	BirthCountry  *string `json:"birth_country"`
	BirthProvince *string `json:"birth_province"`
	BirthTown     *string `json:"birth_town"`
	Phone         *string `json:"phone"`
}

// --------- Handlers ---------

type userSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
		})
	}

	httpresp.List(c, out)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		writeBusinessError(c, httperr.ErrBusiness("user_not_found"))
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		writeBusinessError(c, httperr.ErrBusiness("user_not_found"))
		return
	}

	if req.BirthDate != nil {
		if _, err := domain.CanonicalDate(*req.BirthDate); err != nil {
			writeBusinessError(c, httperr.ErrBusiness("invalid_birth_date"))
			return
		}
		user.BirthDate = *req.BirthDate
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Sex != nil {
		user.Sex = *req.Sex
	}
	if req.BirthCountry != nil {
		user.BirthCountry = *req.BirthCountry
	}
	if req.BirthProvince != nil {
		user.BirthProvince = *req.BirthProvince
	}
	if req.BirthTown != nil {
		user.BirthTown = *req.BirthTown
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Unexpected error.")
		return
	}

	httpresp.OK(c, user)
}

// Delete remove o usuário; as reservas dele caem em cascata no banco.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Unexpected error.")
		return
	}
	if res.RowsAffected == 0 {
		writeBusinessError(c, httperr.ErrBusiness("user_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
