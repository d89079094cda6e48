package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicate  = errors.New("unique constraint violation")
	ErrForeignKey = errors.New("foreign key violation")
	ErrNotFound   = errors.New("record not found")
)

// Коды SQLSTATE PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateError переводит ошибки драйвера и GORM в ошибки уровня репозитория.
// Уникальность и внешние ключи контролирует БД, приложение их только распознаёт.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrForeignKey
		}
	}
	return err
}
