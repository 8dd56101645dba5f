package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tinom14/Avito-test/internal/services/auth"
	"github.com/Tinom14/Avito-test/internal/services/ledger"
)

// NewRouter constructs the API routes: one public auth endpoint and the
// bearer-protected store endpoints.
func NewRouter(store *ledger.Service, authSvc *auth.Service) http.Handler {
	h := NewHandler(store, authSvc)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/auth", h.AuthHandler)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(authSvc))

		r.Get("/api/info", h.InfoHandler)
		r.Post("/api/sendCoin", h.SendCoinHandler)
		r.Get("/api/buy/{item}", h.BuyHandler)
	})

	return r
}
