package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrEmptySearchTerm      = errors.New("search term is empty")
	ErrReferencedRowMissing = errors.New("referenced venue or artist does not exist")
	ErrHasDependents        = errors.New("record is still referenced by shows")
)

const foreignKeyViolationCode = "23503"

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
