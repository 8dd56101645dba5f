package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/catalog"
	"github.com/Tinom14/Avito-test/internal/infra/pgutils"
)

// BuyItem debits the buyer and appends the purchase record in one DB
// transaction. The price comes from the catalog, never from the caller,
// so a forged price cannot reach the ledger.
func (s *Service) BuyItem(ctx context.Context, buyerID uint64, itemName string) error {
	price, ok := s.catalog.Lookup(itemName)
	if !ok {
		return catalog.ErrUnknownItem
	}

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.debitForPurchase(tx, buyerID, price)
		if err != nil {
			return fmt.Errorf("debit for purchase: %w", err)
		}

		// price came from the catalog one lookup ago; this guards the
		// record against a wiring regression, not against callers
		err = s.catalog.ValidatePrice(itemName, price)
		if err != nil {
			return fmt.Errorf("validate price: %w", err)
		}

		err = s.purchases.Insert(tx, buyerID, itemName, price)
		if err != nil {
			return fmt.Errorf("insert purchase record: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("buy item: %w", err)
	}

	return nil
}
