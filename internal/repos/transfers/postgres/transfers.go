package transfers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tinom14/Avito-test/internal/repos/transfers"
)

var _ transfers.Transfers = (*transfersRepo)(nil)

type transfersRepo struct{ db *sql.DB }

func New(db *sql.DB) *transfersRepo {
	return &transfersRepo{db: db}
}

func (r *transfersRepo) Insert(tx *sql.Tx, senderID, receiverID uint64, amount int64) error {
	_, err := tx.Exec(`
		INSERT INTO transfers (sender_id, receiver_id, amount)
		VALUES ($1, $2, $3)
	`, senderID, receiverID, amount)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}

	return nil
}

func (r *transfersRepo) ListReceived(ctx context.Context, userID uint64) ([]transfers.Entry, error) {
	entries, err := r.list(ctx, `
		SELECT u.username, t.amount
		FROM transfers t
		JOIN users u ON u.id = t.sender_id
		WHERE t.receiver_id = $1
		ORDER BY t.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list received: %w", err)
	}

	return entries, nil
}

func (r *transfersRepo) ListSent(ctx context.Context, userID uint64) ([]transfers.Entry, error) {
	entries, err := r.list(ctx, `
		SELECT u.username, t.amount
		FROM transfers t
		JOIN users u ON u.id = t.receiver_id
		WHERE t.sender_id = $1
		ORDER BY t.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sent: %w", err)
	}

	return entries, nil
}

func (r *transfersRepo) list(ctx context.Context, query string, userID uint64) ([]transfers.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()

	var entries []transfers.Entry

	for rows.Next() {
		var e transfers.Entry

		err = rows.Scan(&e.Counterparty, &e.Amount)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}

		entries = append(entries, e)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}

	return entries, nil
}
