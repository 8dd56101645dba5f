package ledger

import (
	"context"
	"fmt"
)

type InventoryItem struct {
	Type     string
	Quantity int64
}

type IncomingTransfer struct {
	FromUser string
	Amount   int64
}

type OutgoingTransfer struct {
	ToUser string
	Amount int64
}

type Profile struct {
	Coins     int64
	Inventory []InventoryItem
	Received  []IncomingTransfer
	Sent      []OutgoingTransfer
}

// GetProfile reconstructs the user's balance, owned items and transfer
// history from the ledger. Reads take no locks; a snapshot slightly
// stale w.r.t. concurrent mutations is acceptable here.
//
// A missing wallet surfaces as wallets.ErrWalletNotFound: provisioning
// creates the wallet with the account, so reaching it means an upstream
// bug, not a user error.
func (s *Service) GetProfile(ctx context.Context, userID uint64) (*Profile, error) {
	balance, err := s.wallets.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	counts, err := s.purchases.CountByItem(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count purchases: %w", err)
	}

	received, err := s.transfers.ListReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list received transfers: %w", err)
	}

	sent, err := s.transfers.ListSent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sent transfers: %w", err)
	}

	p := &Profile{
		Coins:     balance,
		Inventory: make([]InventoryItem, 0, len(counts)),
		Received:  make([]IncomingTransfer, 0, len(received)),
		Sent:      make([]OutgoingTransfer, 0, len(sent)),
	}

	for _, c := range counts {
		p.Inventory = append(p.Inventory, InventoryItem{Type: c.ItemName, Quantity: c.Quantity})
	}

	for _, e := range received {
		p.Received = append(p.Received, IncomingTransfer{FromUser: e.Counterparty, Amount: e.Amount})
	}

	for _, e := range sent {
		p.Sent = append(p.Sent, OutgoingTransfer{ToUser: e.Counterparty, Amount: e.Amount})
	}

	return p, nil
}
