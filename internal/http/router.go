// Package http assembles the service's HTTP routes.
package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"football-player-service/internal/http/handlers"
)

// NewRouter registers HTTP routes.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/players", handler.Players).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/lookup", handler.Lookup).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/stats", handler.Stats).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id}", handler.PlayerByID).Methods(nethttp.MethodGet)
	return r
}
