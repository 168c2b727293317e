package booking

// Rótulo usado quando o profissional referenciado não existe mais;
// a projeção nunca falha por causa da junção.
const ProfessionalUnavailable = "unavailable"

type CreateReservationInput struct {
	UserID         uint
	ProfessionalID uint
	Date           string
	Time           string
	Status         string
}

type AddSlotInput struct {
	ProfessionalID uint
	Date           string
	Time           string
}
