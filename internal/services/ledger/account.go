package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/infra/pgutils"
)

// CreateAccount inserts the user row and provisions its wallet with the
// starting balance in one DB transaction. Either both exist afterwards
// or neither does.
func (s *Service) CreateAccount(ctx context.Context, username, passwordHash string) (uint64, error) {
	var userID uint64

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		id, err := s.users.Create(tx, username, passwordHash)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		err = s.wallets.Provision(tx, id, StartingBalance)
		if err != nil {
			return fmt.Errorf("provision wallet: %w", err)
		}

		userID = id

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}

	return userID, nil
}
