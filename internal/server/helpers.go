package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finflow/backend/internal/wallet"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// statusFor maps domain errors onto HTTP statuses: insufficient funds is
// 402, every validation rejection is 400.
func statusFor(err error) int {
	if errors.Is(err, wallet.ErrInsufficientFunds) {
		return http.StatusPaymentRequired
	}
	return http.StatusBadRequest
}
