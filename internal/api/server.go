package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Tinom14/Avito-test/internal/services/auth"
	"github.com/Tinom14/Avito-test/internal/services/ledger"
)

// NewServer creates and returns a configured *http.Server for the store API.
func NewServer(port uint16, store *ledger.Service, authSvc *auth.Service) *http.Server {
	mux := NewRouter(store, authSvc)

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
