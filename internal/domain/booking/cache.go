package booking

import "context"

// AvailabilityCache é uma porta opcional para a camada de leitura.
// Um miss nunca é erro; falha de cache degrada para o ledger.
type AvailabilityCache interface {
	GetDates(ctx context.Context, professionalID uint, from string) ([]string, bool)
	SetDates(ctx context.Context, professionalID uint, from string, dates []string)

	GetTimes(ctx context.Context, professionalID uint, date string) ([]string, bool)
	SetTimes(ctx context.Context, professionalID uint, date string, times []string)

	// Invalidate descarta as projeções do profissional após uma
	// mutação no ledger. Reservas não invalidam nada: os dois
	// conjuntos são independentes.
	Invalidate(ctx context.Context, professionalID uint)
}
