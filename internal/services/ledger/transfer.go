package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/infra/pgutils"
	"github.com/Tinom14/Avito-test/internal/repos/users"
)

// SendCoins runs the full peer-to-peer transfer in a single DB transaction:
//
// 1) Resolve receiver by username.
// 2) Reject self-transfers.
// 3) Lock both wallets (ascending id) and move the balance.
// 4) Append the immutable transfer record.
func (s *Service) SendCoins(ctx context.Context, senderID uint64, receiverUsername string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		receiverID, err := s.users.IDByUsername(tx, receiverUsername)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				return ErrReceiverNotFound
			}

			return fmt.Errorf("resolve receiver: %w", err)
		}

		if receiverID == senderID {
			return ErrSameParty
		}

		err = s.transferBalance(tx, senderID, receiverID, amount)
		if err != nil {
			return fmt.Errorf("transfer balance: %w", err)
		}

		err = s.transfers.Insert(tx, senderID, receiverID, amount)
		if err != nil {
			return fmt.Errorf("insert transfer record: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("send coins: %w", err)
	}

	return nil
}
