package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tinom14/Avito-test/internal/catalog"
	"github.com/Tinom14/Avito-test/internal/infra/pgtestutil"
	"github.com/Tinom14/Avito-test/internal/services/ledger"
)

func newTestAuth(t *testing.T) (*Service, *ledger.Service, func()) {
	t.Helper()

	db, cleanup := pgtestutil.NewTestDB(t)

	store := ledger.New(db, catalog.Default())
	tokens := NewTokenIssuer("test-secret", time.Hour)

	return New(db, store, tokens), store, cleanup
}

func TestAuth_Login_RegistersAndProvisions(t *testing.T) {
	t.Parallel()

	svc, store, cleanup := newTestAuth(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	token, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}

	// registration must have provisioned the wallet with the starting balance
	p, err := store.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Coins != ledger.StartingBalance {
		t.Fatalf("starting balance: want %d, got %d", ledger.StartingBalance, p.Coins)
	}
}

func TestAuth_Login_SecondLoginSameUser(t *testing.T) {
	t.Parallel()

	svc, _, cleanup := newTestAuth(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	first, err := svc.Login(ctx, "bob", "pass")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	second, err := svc.Login(ctx, "bob", "pass")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	firstID, err := svc.Verify(first)
	if err != nil {
		t.Fatalf("verify first: %v", err)
	}
	secondID, err := svc.Verify(second)
	if err != nil {
		t.Fatalf("verify second: %v", err)
	}

	if firstID != secondID {
		t.Fatalf("logins resolved to different users: %d vs %d", firstID, secondID)
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _, cleanup := newTestAuth(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	_, err := svc.Login(ctx, "carol", "right")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err = svc.Login(ctx, "carol", "wrong")
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("want ErrWrongPassword, got %v", err)
	}
}
