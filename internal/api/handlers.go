package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tinom14/Avito-test/internal/catalog"
	"github.com/Tinom14/Avito-test/internal/services/auth"
	"github.com/Tinom14/Avito-test/internal/services/ledger"
	"github.com/Tinom14/Avito-test/internal/repos/wallets"
)

// HandlerProvider wraps the store and auth services and exposes HTTP handlers.
type HandlerProvider struct {
	store *ledger.Service
	auth  *auth.Service
}

// NewHandler returns a new handler provider.
func NewHandler(store *ledger.Service, authSvc *auth.Service) *HandlerProvider {
	return &HandlerProvider{store: store, auth: authSvc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"errors": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}

		return errors.New("invalid JSON")
	}

	return nil
}

// --- Handlers ---

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler handles POST /api/auth. First login for an unknown
// username registers the account.
func (h *HandlerProvider) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req authRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			writeError(w, http.StatusUnauthorized, "wrong password")
			return
		}

		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// InfoHandler handles GET /api/info.
func (h *HandlerProvider) InfoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth context")
		return
	}

	profile, err := h.store.GetProfile(r.Context(), userID)
	if err != nil {
		// a missing wallet for an authenticated user is a provisioning
		// bug, not a client error
		slog.Error("get profile failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	inventory := make([]map[string]any, 0, len(profile.Inventory))
	for _, it := range profile.Inventory {
		inventory = append(inventory, map[string]any{"type": it.Type, "quantity": it.Quantity})
	}

	received := make([]map[string]any, 0, len(profile.Received))
	for _, tr := range profile.Received {
		received = append(received, map[string]any{"fromUser": tr.FromUser, "amount": tr.Amount})
	}

	sent := make([]map[string]any, 0, len(profile.Sent))
	for _, tr := range profile.Sent {
		sent = append(sent, map[string]any{"toUser": tr.ToUser, "amount": tr.Amount})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"coins":     profile.Coins,
		"inventory": inventory,
		"coinHistory": map[string]any{
			"received": received,
			"sent":     sent,
		},
	})
}

type sendCoinRequest struct {
	ToUser string `json:"toUser"`
	Amount int64  `json:"amount"`
}

// SendCoinHandler handles POST /api/sendCoin.
func (h *HandlerProvider) SendCoinHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth context")
		return
	}

	var req sendCoinRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ToUser == "" {
		writeError(w, http.StatusBadRequest, "toUser is required")
		return
	}

	err = h.store.SendCoins(r.Context(), userID, req.ToUser, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "amount must be positive")
		case errors.Is(err, ledger.ErrSameParty):
			writeError(w, http.StatusBadRequest, "cannot send coins to yourself")
		case errors.Is(err, ledger.ErrReceiverNotFound):
			writeError(w, http.StatusBadRequest, "receiver not found")
		case errors.Is(err, wallets.ErrInsufficientFunds):
			writeError(w, http.StatusBadRequest, "insufficient funds")
		default:
			slog.Error("send coins failed", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "coins sent"})
}

// BuyHandler handles GET /api/buy/{item}.
func (h *HandlerProvider) BuyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth context")
		return
	}

	item := chi.URLParam(r, "item")
	if item == "" {
		writeError(w, http.StatusBadRequest, "item is required")
		return
	}

	err := h.store.BuyItem(r.Context(), userID, item)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownItem):
			writeError(w, http.StatusBadRequest, "unknown item")
		case errors.Is(err, wallets.ErrInsufficientFunds):
			writeError(w, http.StatusBadRequest, "insufficient funds")
		default:
			slog.Error("buy item failed", "user_id", userID, "item", item, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "item purchased"})
}
