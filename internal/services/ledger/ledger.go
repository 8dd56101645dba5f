package ledger

import (
	"database/sql"
	"errors"

	"github.com/Tinom14/Avito-test/internal/catalog"
	"github.com/Tinom14/Avito-test/internal/repos/purchases"
	pgpurchases "github.com/Tinom14/Avito-test/internal/repos/purchases/postgres"
	"github.com/Tinom14/Avito-test/internal/repos/transfers"
	pgtransfers "github.com/Tinom14/Avito-test/internal/repos/transfers/postgres"
	"github.com/Tinom14/Avito-test/internal/repos/users"
	pgusers "github.com/Tinom14/Avito-test/internal/repos/users/postgres"
	"github.com/Tinom14/Avito-test/internal/repos/wallets"
	pgwallets "github.com/Tinom14/Avito-test/internal/repos/wallets/postgres"
)

// StartingBalance is credited to every freshly provisioned wallet.
const StartingBalance int64 = 1000

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrSameParty        = errors.New("sender and receiver are the same user")
	ErrReceiverNotFound = errors.New("receiver not found")
)

// Service owns every balance mutation in the system. All writes go
// through a single DB transaction so the balance change and the
// immutable record commit together or not at all.
type Service struct {
	db        *sql.DB
	catalog   *catalog.Catalog
	users     users.Users
	wallets   wallets.Wallets
	transfers transfers.Transfers
	purchases purchases.Purchases
}

func New(dbx *sql.DB, cat *catalog.Catalog) *Service {
	return &Service{
		db:        dbx,
		catalog:   cat,
		users:     pgusers.New(dbx),
		wallets:   pgwallets.New(dbx),
		transfers: pgtransfers.New(dbx),
		purchases: pgpurchases.New(dbx),
	}
}
