package users

import (
	"context"
	"database/sql"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already taken")

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
}

type Users interface {
	Create(tx *sql.Tx, username, passwordHash string) (uint64, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	IDByUsername(tx *sql.Tx, username string) (uint64, error)
}
