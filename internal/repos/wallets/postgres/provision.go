package wallets

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Tinom14/Avito-test/internal/repos/wallets"
)

func (r *walletsRepo) Provision(tx *sql.Tx, userID uint64, balance int64) error {
	_, err := tx.Exec(`
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
	`, userID, balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return wallets.ErrWalletExists
		}

		return fmt.Errorf("insert wallet: %w", err)
	}

	return nil
}
