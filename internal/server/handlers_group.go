package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/service"
)

type renameRequest struct {
	Name string `json:"name"`
}

type memberRequest struct {
	Name string `json:"name"`
}

type expenseRequest struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	PaidBy string  `json:"paid_by"`
}

type payRequest struct {
	To     string  `json:"to"`
	ToName string  `json:"to_name"`
	Amount float64 `json:"amount"`
}

type groupResponse struct {
	Name     string           `json:"name"`
	Members  []models.Member  `json:"members"`
	Expenses []models.Expense `json:"expenses"`
	Summary  service.Summary  `json:"summary"`
}

// settlementLeg decorates a settlement with its external payment link.
type settlementLeg struct {
	models.Settlement
	UPILink string `json:"upi_link"`
}

type settlementsResponse struct {
	Available   bool            `json:"available"`
	Settlements []settlementLeg `json:"settlements"`
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, groupResponse{
		Name:     s.group.Name(),
		Members:  s.group.Members(),
		Expenses: s.group.Expenses(),
		Summary:  s.group.Summary(),
	})
}

func (s *Server) handleRenameGroup(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.group.Rename(req.Name)
	writeJSON(w, http.StatusOK, map[string]string{"name": s.group.Name()})
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	member, err := s.group.AddMember(req.Name)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	s.group.RemoveMember(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	expense, err := s.group.AddExpense(req.Title, req.Amount, req.PaidBy)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	s.group.RemoveExpense(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCalculateSplit(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.group.CalculateSplit()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, settlementsResponse{
		Available:   true,
		Settlements: s.decorate(settlements),
	})
}

func (s *Server) handleSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, available := s.group.Settlements()
	writeJSON(w, http.StatusOK, settlementsResponse{
		Available:   available,
		Settlements: s.decorate(settlements),
	})
}

func (s *Server) handlePaySettlement(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	settlement := models.Settlement{To: req.To, ToName: req.ToName, Amount: req.Amount}
	if err := s.group.PayFromWallet(settlement); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: s.wallet.Balance()})
}

func (s *Server) decorate(settlements []models.Settlement) []settlementLeg {
	legs := make([]settlementLeg, len(settlements))
	for i, st := range settlements {
		legs[i] = settlementLeg{Settlement: st, UPILink: s.group.PaymentLink(st)}
	}
	return legs
}
