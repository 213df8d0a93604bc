package repository

import (
	"errors"

	repo "github.com/inventory-backend/stockroom/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgresのFK違反
const pgForeignKeyViolation = "23503"

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// gorm/pgのエラーをrepositoryのエラーへ寄せる
func translate(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return repo.ErrForeignKey
	}
	return err
}
