package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Tinom14/Avito-test/internal/repos/users"
	pgusers "github.com/Tinom14/Avito-test/internal/repos/users/postgres"
)

var ErrWrongPassword = errors.New("wrong password")

// Accounts provisions a user together with its wallet. Implemented by
// the ledger service.
type Accounts interface {
	CreateAccount(ctx context.Context, username, passwordHash string) (uint64, error)
}

type Service struct {
	users    users.Users
	accounts Accounts
	tokens   *TokenIssuer
}

func New(dbx *sql.DB, accounts Accounts, tokens *TokenIssuer) *Service {
	return &Service{
		users:    pgusers.New(dbx),
		accounts: accounts,
		tokens:   tokens,
	}
}

// Login authenticates the user and returns an access token. Unknown
// usernames are registered on the spot, wallet included.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)

	switch {
	case err == nil:
		cerr := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
		if cerr != nil {
			return "", ErrWrongPassword
		}

		return s.issue(u.ID, username)

	case errors.Is(err, users.ErrUserNotFound):
		return s.register(ctx, username, password)

	default:
		return "", fmt.Errorf("find user: %w", err)
	}
}

// Verify resolves a bearer token to the user id it was issued for.
func (s *Service) Verify(token string) (uint64, error) {
	return s.tokens.Verify(token)
}

func (s *Service) register(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.accounts.CreateAccount(ctx, username, string(hash))
	if err != nil {
		// lost a race with a concurrent first login for the same name;
		// fall back to the regular password check
		if errors.Is(err, users.ErrUsernameTaken) {
			return s.Login(ctx, username, password)
		}

		return "", fmt.Errorf("create account: %w", err)
	}

	return s.issue(userID, username)
}

func (s *Service) issue(userID uint64, username string) (string, error) {
	token, err := s.tokens.Issue(userID, username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
