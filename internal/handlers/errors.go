package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salusbook/api-prenotazioni/internal/httperr"
)

// Mensagens por código de negócio; o código em si é o contrato.
var businessMessages = map[string]string{
	"invalid_date":            "Invalid date format, expected YYYY-MM-DD.",
	"invalid_time":            "Time is required.",
	"invalid_birth_date":      "Invalid birth date, expected YYYY-MM-DD.",
	"invalid_image":           "Unsupported image, expected JPEG or PNG.",
	"unknown_user":            "User does not exist.",
	"unknown_professional":    "Professional does not exist.",
	"slot_unavailable":        "The professional has no opening at that date and time.",
	"slot_already_booked":     "That time is already booked, pick another one.",
	"availability_exists":     "An opening already exists for that date and time.",
	"availability_not_found":  "Availability not found.",
	"reservation_not_found":   "Reservation not found.",
	"professional_not_found":  "Professional not found.",
	"user_not_found":          "User not found.",
	"professional_exists":     "Professional already registered.",
	"email_in_use":            "Email already in use.",
	"fiscal_code_in_use":      "Fiscal code already in use.",
	"password_mismatch":       "Passwords do not match.",
	"invalid_email_domain":    "The email domain does not look valid.",
	"invalid_credentials":     "Invalid credentials.",
}

// writeBusinessError mapeia códigos *_not_found para 404 e o restante
// dos códigos de negócio para 400; tudo o mais é falha interna.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = code
	}

	if httperr.IsNotFound(err) {
		httperr.NotFound(c, code, msg)
		return
	}

	httperr.BadRequest(c, code, msg)
}
