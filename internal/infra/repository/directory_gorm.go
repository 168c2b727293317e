package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

// DirectoryGorm responde apenas por checagens de existência e lookups
// de leitura sobre as entidades de referência.
type DirectoryGorm struct {
	db *gorm.DB
}

func NewDirectoryGorm(db *gorm.DB) *DirectoryGorm {
	return &DirectoryGorm{db: db}
}

func (r *DirectoryGorm) UserExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DirectoryGorm) ProfessionalExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DirectoryGorm) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}
	return &prof, nil
}

// Compile-time check
var _ domain.Directory = (*DirectoryGorm)(nil)
