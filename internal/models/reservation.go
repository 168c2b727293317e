package models

import "time"

// Reservation referencia o slot apenas pela tupla (professional_id,
// date, time); slot e reserva vivem em conjuntos independentes e só se
// encontram na validação de criação.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ProfessionalID uint         `gorm:"not null;uniqueIndex:idx_reservations_tuple" json:"professional_id"`
	Professional   Professional `json:"-"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_reservations_tuple" json:"date"`
	Time string `gorm:"size:10;not null;uniqueIndex:idx_reservations_tuple" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
