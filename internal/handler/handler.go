package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"currencymon/internal/adapters"
	"currencymon/internal/domain"
)

// RateReconciler is the merge/refresh surface the handlers need.
type RateReconciler interface {
	Merge(ctx context.Context, snap domain.RateSnapshot, createMissing bool) (int, error)
	Refresh(ctx context.Context) (int, error)
}

type Handler struct {
	currencies adapters.CurrencyRepository
	users      adapters.UserRepository
	reconciler RateReconciler
}

func NewHandler(currencies adapters.CurrencyRepository, users adapters.UserRepository, reconciler RateReconciler) *Handler {
	return &Handler{currencies: currencies, users: users, reconciler: reconciler}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
