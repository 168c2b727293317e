package models

import "time"

// Profissional de saúde (médico, nutricionista, psicólogo)
type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:50;not null" json:"specialization"`
	PhotoURL       string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
