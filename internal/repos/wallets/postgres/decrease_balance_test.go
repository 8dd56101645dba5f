package wallets

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Tinom14/Avito-test/internal/infra/pgtestutil"
	"github.com/Tinom14/Avito-test/internal/repos/wallets"
)

func TestWallets_DecreaseBalance_Table(t *testing.T) {
	t.Parallel()

	type tc struct {
		name          string
		seedBalance   int64
		seedWallet    bool
		amount        int64
		wantBalance   int64
		wantErr       bool // true -> expect wallets.ErrInsufficientFunds
		checkFinalBal bool
	}

	tests := []tc{
		{
			name:          "sufficient_funds_decrease_from_positive",
			seedBalance:   1_000,
			seedWallet:    true,
			amount:        250,
			wantBalance:   750,
			wantErr:       false,
			checkFinalBal: true,
		},
		{
			name:          "sufficient_funds_exact_to_zero",
			seedBalance:   300,
			seedWallet:    true,
			amount:        300,
			wantBalance:   0,
			wantErr:       false,
			checkFinalBal: true,
		},
		{
			name:          "insufficient_funds_balance_unchanged",
			seedBalance:   200,
			seedWallet:    true,
			amount:        300,
			wantBalance:   200, // should remain unchanged
			wantErr:       true,
			checkFinalBal: true,
		},
		{
			name:          "wallet_missing_treated_as_insufficient",
			seedWallet:    false,
			amount:        100,
			wantErr:       true, // 0 rows affected -> ErrInsufficientFunds
			checkFinalBal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			userID := uint64(999_999) // no wallet row for this id
			if tt.seedWallet {
				userID = pgtestutil.SeedAccount(t, db, "holder", tt.seedBalance)
			}

			repo := New(db)

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				t.Fatalf("begin tx: %v", err)
			}
			defer func() { _ = tx.Rollback() }()

			err = repo.DecreaseBalance(tx, userID, tt.amount)

			if tt.wantErr {
				if !errors.Is(err, wallets.ErrInsufficientFunds) {
					t.Fatalf("expected ErrInsufficientFunds, got: %v", err)
				}
				// no commit on error
			} else {
				if err != nil {
					t.Fatalf("decrease balance: %v", err)
				}
				err = tx.Commit()
				if err != nil {
					t.Fatalf("commit: %v", err)
				}
			}

			if tt.checkFinalBal {
				got, gerr := repo.GetBalance(ctx, userID)
				if gerr != nil {
					t.Fatalf("get balance after decrease: %v", gerr)
				}
				if got != tt.wantBalance {
					t.Fatalf("final balance mismatch: want %d, got %d", tt.wantBalance, got)
				}
			}
		})
	}
}

func TestWallets_DecreaseBalance_ConcurrentGuard(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	userID := pgtestutil.SeedAccount(t, db, "racer", 1000)

	var wg sync.WaitGroup
	var mu sync.Mutex
	success, insufficient := 0, 0

	worker := func(name string) {
		defer wg.Done()

		ctx := context.Background()
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Errorf("[%s] begin tx: %v", name, err)
			return
		}
		defer func() { _ = tx.Rollback() }()

		// Lock the row first; concurrent workers serialize here.
		_, err = repo.LockAndGetBalance(tx, userID)
		if err != nil {
			t.Errorf("[%s] lock balance: %v", name, err)
			return
		}

		err = repo.DecreaseBalance(tx, userID, 1000)

		mu.Lock()
		defer mu.Unlock()

		switch {
		case err == nil:
			if cerr := tx.Commit(); cerr != nil {
				t.Errorf("[%s] commit: %v", name, cerr)
				return
			}
			success++
		case errors.Is(err, wallets.ErrInsufficientFunds):
			insufficient++
		default:
			t.Errorf("[%s] unexpected error: %v", name, err)
		}
	}

	wg.Add(2)
	go worker("a")
	go worker("b")
	wg.Wait()

	if success != 1 || insufficient != 1 {
		t.Fatalf("want exactly one success and one insufficient, got success=%d insufficient=%d",
			success, insufficient)
	}

	got, err := repo.GetBalance(context.Background(), userID)
	if err != nil {
		t.Fatalf("get final balance: %v", err)
	}
	if got != 0 {
		t.Fatalf("final balance: want 0, got %d", got)
	}
}
