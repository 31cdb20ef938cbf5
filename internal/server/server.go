// Package server exposes one finflow session over a JSON HTTP API.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finflow/backend/internal/service"
)

// Server holds the handlers for one session.
type Server struct {
	wallet *service.WalletService
	group  *service.GroupService
}

// New creates a Server over the given services.
func New(wallet *service.WalletService, group *service.GroupService) *Server {
	return &Server{wallet: wallet, group: group}
}

// Router builds the route table with logging, CORS and metrics middleware.
// All /api routes speak JSON.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/wallet", s.handleWallet).Methods(http.MethodGet)
	api.HandleFunc("/wallet/income", s.handleAddIncome).Methods(http.MethodPost)
	api.HandleFunc("/wallet/expense", s.handleDeductExpense).Methods(http.MethodPost)
	api.HandleFunc("/wallet/transfer", s.handleTransfer).Methods(http.MethodPost)

	api.HandleFunc("/group", s.handleGetGroup).Methods(http.MethodGet)
	api.HandleFunc("/group", s.handleRenameGroup).Methods(http.MethodPut)
	api.HandleFunc("/group/members", s.handleAddMember).Methods(http.MethodPost)
	api.HandleFunc("/group/members/{id}", s.handleRemoveMember).Methods(http.MethodDelete)
	api.HandleFunc("/group/expenses", s.handleAddExpense).Methods(http.MethodPost)
	api.HandleFunc("/group/expenses/{id}", s.handleRemoveExpense).Methods(http.MethodDelete)
	api.HandleFunc("/group/split", s.handleCalculateSplit).Methods(http.MethodPost)
	api.HandleFunc("/group/settlements", s.handleSettlements).Methods(http.MethodGet)
	api.HandleFunc("/group/settlements/pay", s.handlePaySettlement).Methods(http.MethodPost)

	return metricsMiddleware(loggingMiddleware(corsMiddleware(r)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
