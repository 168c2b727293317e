package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`

	BirthDate     string `gorm:"size:10;not null" json:"birth_date"`
	Sex           string `gorm:"size:10;not null" json:"sex"`
	BirthCountry  string `gorm:"size:50" json:"birth_country"`
	BirthProvince string `gorm:"size:50" json:"birth_province"`
	BirthTown     string `gorm:"size:50" json:"birth_town"`

	FiscalCode string `gorm:"size:16;uniqueIndex;not null" json:"fiscal_code"`

	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:15" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	DataConsent bool `gorm:"default:false" json:"data_consent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
