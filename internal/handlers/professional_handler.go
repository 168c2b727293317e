package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/httpresp"
	"github.com/salusbook/api-prenotazioni/internal/models"
	"github.com/salusbook/api-prenotazioni/internal/storage"
)

const maxPhotoUploadBytes = 5 << 20

type ProfessionalHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewProfessionalHandler(db *gorm.DB, photos *storage.PhotoStore) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, photos: photos}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	var professionals []models.Professional
	if err := h.db.Order("id ASC").Find(&professionals).Error; err != nil {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	httpresp.List(c, professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Professional{}).
		Where("name = ? AND specialization = ?", req.Name, req.Specialization).
		Count(&count)
	if count > 0 {
		writeBusinessError(c, httperr.ErrBusiness("professional_exists"))
		return
	}

	prof := models.Professional{
		Name:           req.Name,
		Specialization: req.Specialization,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Unexpected error.")
		return
	}

	httpresp.Created(c, prof)
}

// UploadPhoto recebe multipart "photo", normaliza para WebP e guarda
// no bucket; a URL pública fica no cadastro do profissional.
func (h *ProfessionalHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var prof models.Professional
	if err := h.db.First(&prof, id).Error; err != nil {
		writeBusinessError(c, httperr.ErrBusiness("professional_not_found"))
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Unexpected error.")
		return
	}
	if len(raw) > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo exceeds the 5MB limit.")
		return
	}

	url, err := h.photos.UploadProfessionalPhoto(c.Request.Context(), prof.ID, raw)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			writeBusinessError(c, err)
			return
		}
		httperr.Internal(c, "failed_to_store_photo", "Unexpected error.")
		return
	}

	prof.PhotoURL = url
	if err := h.db.Save(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
