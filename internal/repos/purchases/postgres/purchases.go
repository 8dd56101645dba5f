package purchases

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/repos/purchases"
)

var _ purchases.Purchases = (*purchasesRepo)(nil)

type purchasesRepo struct{ db *sql.DB }

func New(db *sql.DB) *purchasesRepo {
	return &purchasesRepo{db: db}
}

func (r *purchasesRepo) Insert(tx *sql.Tx, userID uint64, itemName string, itemPrice int64) error {
	_, err := tx.Exec(`
		INSERT INTO purchases (user_id, item_name, item_price)
		VALUES ($1, $2, $3)
	`, userID, itemName, itemPrice)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}

	return nil
}

func (r *purchasesRepo) CountByItem(ctx context.Context, userID uint64) ([]purchases.ItemCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_name, COUNT(*)
		FROM purchases
		WHERE user_id = $1
		GROUP BY item_name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query purchase counts: %w", err)
	}
	defer rows.Close()

	var counts []purchases.ItemCount

	for rows.Next() {
		var c purchases.ItemCount

		err = rows.Scan(&c.ItemName, &c.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scan purchase count: %w", err)
		}

		counts = append(counts, c)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate purchase counts: %w", err)
	}

	return counts, nil
}
