package wallets

import (
	"context"
	"database/sql"
	"errors"
)

var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrWalletNotFound = errors.New("wallet not found")
var ErrWalletExists = errors.New("wallet already provisioned")

type Wallets interface {
	Provision(tx *sql.Tx, userID uint64, balance int64) error
	GetBalance(ctx context.Context, userID uint64) (int64, error)
	LockAndGetBalance(tx *sql.Tx, userID uint64) (int64, error)
	IncreaseBalance(tx *sql.Tx, userID uint64, amount int64) error
	DecreaseBalance(tx *sql.Tx, userID uint64, amount int64) error
}
