package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dategetter/internal/api/handler"
	"github.com/mcoot/dategetter/internal/api/response"
	"github.com/mcoot/dategetter/internal/dateformat"
	"github.com/mcoot/dategetter/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Formatter *dateformat.Formatter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	dateHandler := handler.NewDateHandler(cfg.Formatter)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, handler.Panic))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/date", dateHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/dialects", dateHandler.Dialects).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
