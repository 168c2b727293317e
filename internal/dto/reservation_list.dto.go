package dto

type ReservationListDTO struct {
	ID               uint   `json:"id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Status           string `json:"status"`
	ProfessionalName string `json:"professional_name"`
}
