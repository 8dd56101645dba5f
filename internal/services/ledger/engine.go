package ledger

import (
	"database/sql"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/repos/wallets"
)

// transferBalance moves amount between two wallets inside the caller's
// transaction. Both rows are locked before any check, always in
// ascending user-id order so two opposite-direction transfers between
// the same pair cannot deadlock each other.
func (s *Service) transferBalance(tx *sql.Tx, fromID, toID uint64, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	first, second := fromID, toID
	if first > second {
		first, second = second, first
	}

	firstBal, err := s.wallets.LockAndGetBalance(tx, first)
	if err != nil {
		return fmt.Errorf("lock wallet %d: %w", first, err)
	}

	secondBal, err := s.wallets.LockAndGetBalance(tx, second)
	if err != nil {
		return fmt.Errorf("lock wallet %d: %w", second, err)
	}

	sourceBal := firstBal
	if fromID == second {
		sourceBal = secondBal
	}

	// pre-check against the locked balance
	if sourceBal < amount {
		return fmt.Errorf("pre-check transfer: %w", wallets.ErrInsufficientFunds)
	}

	err = s.wallets.DecreaseBalance(tx, fromID, amount)
	if err != nil {
		return fmt.Errorf("decrease sender balance: %w", err)
	}

	err = s.wallets.IncreaseBalance(tx, toID, amount)
	if err != nil {
		return fmt.Errorf("increase receiver balance: %w", err)
	}

	return nil
}

// debitForPurchase removes amount from a single wallet inside the
// caller's transaction. One row, no ordering rule needed.
func (s *Service) debitForPurchase(tx *sql.Tx, userID uint64, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	balance, err := s.wallets.LockAndGetBalance(tx, userID)
	if err != nil {
		return fmt.Errorf("lock wallet %d: %w", userID, err)
	}

	if balance < amount {
		return fmt.Errorf("pre-check debit: %w", wallets.ErrInsufficientFunds)
	}

	err = s.wallets.DecreaseBalance(tx, userID, amount)
	if err != nil {
		return fmt.Errorf("decrease balance: %w", err)
	}

	return nil
}
