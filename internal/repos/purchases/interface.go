package purchases

import (
	"context"
	"database/sql"
)

type ItemCount struct {
	ItemName string
	Quantity int64
}

type Purchases interface {
	Insert(tx *sql.Tx, userID uint64, itemName string, itemPrice int64) error
	CountByItem(ctx context.Context, userID uint64) ([]ItemCount, error)
}
