package booking

import (
	"time"

	"github.com/salusbook/api-prenotazioni/internal/httperr"
)

const DateLayout = "2006-01-02"

// CanonicalDate valida e normaliza uma data YYYY-MM-DD.
// Qualquer outro formato é rejeitado, nunca reinterpretado.
func CanonicalDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return t.Format(DateLayout), nil
}

// Today retorna a data de referência para listagens de disponibilidade.
func Today() string {
	return time.Now().Format(DateLayout)
}
