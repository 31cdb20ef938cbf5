package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/finflow/backend/internal/models"
)

type amountRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type walletResponse struct {
	Balance      float64              `json:"balance"`
	Transactions []models.Transaction `json:"transactions"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, walletResponse{
		Balance:      s.wallet.Balance(),
		Transactions: s.wallet.Transactions(limit),
	})
}

func (s *Server) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.wallet.AddIncome(req.Amount, req.Description); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: s.wallet.Balance()})
}

func (s *Server) handleDeductExpense(w http.ResponseWriter, r *http.Request) {
	s.handleDebit(w, r, s.wallet.DeductExpense)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	s.handleDebit(w, r, s.wallet.TransferMoney)
}

func (s *Server) handleDebit(w http.ResponseWriter, r *http.Request, op func(float64, string) error) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := op(req.Amount, req.Description); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: s.wallet.Balance()})
}
