package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/repos/users"
)

func (r *usersRepo) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	u := &users.User{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}

		return nil, fmt.Errorf("find user by username: %w", err)
	}

	return u, nil
}

func (r *usersRepo) IDByUsername(tx *sql.Tx, username string) (uint64, error) {
	var id uint64

	err := tx.QueryRow(`
		SELECT id
		FROM users
		WHERE username = $1
	`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, users.ErrUserNotFound
		}

		return 0, fmt.Errorf("resolve username: %w", err)
	}

	return id, nil
}
