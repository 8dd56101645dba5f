package users

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Tinom14/Avito-test/internal/repos/users"
)

func (r *usersRepo) Create(tx *sql.Tx, username, passwordHash string) (uint64, error) {
	var id uint64

	err := tx.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, users.ErrUsernameTaken
		}

		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}
