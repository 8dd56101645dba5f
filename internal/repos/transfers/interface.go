package transfers

import (
	"context"
	"database/sql"
)

// Entry is one side of a recorded transfer: the other party's username
// and the amount moved.
type Entry struct {
	Counterparty string
	Amount       int64
}

type Transfers interface {
	Insert(tx *sql.Tx, senderID, receiverID uint64, amount int64) error
	ListReceived(ctx context.Context, userID uint64) ([]Entry, error)
	ListSent(ctx context.Context, userID uint64) ([]Entry, error)
}
