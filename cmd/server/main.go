package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finflow/backend/internal/config"
	"github.com/finflow/backend/internal/server"
	"github.com/finflow/backend/internal/service"
	"github.com/finflow/backend/internal/upi"
	"github.com/finflow/backend/internal/wallet"
	"github.com/finflow/backend/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	account := wallet.NewAccount(cfg.OpeningBalance)
	links := upi.NewFormatter(cfg.UPIVPA, cfg.UPICurrency)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(service.NewWalletService(account), service.NewGroupService(account, links)).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting",
			"address", srv.Addr,
			"opening_balance", cfg.OpeningBalance,
			"currency", cfg.UPICurrency,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
