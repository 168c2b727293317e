package models

import "time"

// Slot é uma abertura de agenda declarada pelo profissional.
// A tupla (professional_id, date, time) é única: o banco é o árbitro
// final contra duplicatas, mesmo sob requisições concorrentes.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"not null;uniqueIndex:idx_slots_tuple" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_slots_tuple" json:"date"`
	Time string `gorm:"size:10;not null;uniqueIndex:idx_slots_tuple" json:"time"`

	CreatedAt time.Time `json:"created_at"`
}
