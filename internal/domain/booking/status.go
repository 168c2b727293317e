package booking

// ===============================
// Reservation Status
// ===============================

// Status é uma string aberta: a engine nunca ramifica sobre o valor,
// apenas aplica o default e repassa o que o chamador enviar.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Normalize aplica o default; valores desconhecidos passam intactos.
func Normalize(s string) string {
	if s == "" {
		return string(StatusPending)
	}
	return s
}
