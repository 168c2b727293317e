package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// isUniqueViolation reconhece a violação de constraint de unicidade do
// Postgres. É ela que serializa o check-then-insert: de duas inserções
// concorrentes sobre a mesma tupla, exatamente uma recebe 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
