package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/LavaJover/shvark-p2p-exchange/internal/app/background"
	"github.com/LavaJover/shvark-p2p-exchange/internal/app/setup"
	"github.com/LavaJover/shvark-p2p-exchange/internal/config"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	slogger, logCloser, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logCloser.Close()

	deps, err := setup.InitializeDependencies(cfg, slogger)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	ucs, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Принудительное закрытие просроченных диспутов
	background.NewBackgroundTasks(ucs.DisputeUsecase, deps.Clock, cfg.Protocol.SweepInterval, slogger).StartAll(ctx)

	router := handlers.NewRouter(handlers.RouterDeps{
		Admin:           ucs.AdminUsecase,
		Offers:          ucs.OfferUsecase,
		Disputes:        ucs.DisputeUsecase,
		Reputation:      ucs.ReputationUsecase,
		Rewards:         ucs.RewardsUsecase,
		Store:           deps.Store,
		Gatherer:        deps.Registry,
		Logger:          slogger,
		SignatureWindow: cfg.HTTPServer.SignatureWindow,
		DevRoutes:       cfg.Env == "local",
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	// Start
	go func() {
		slogger.Info("exchange service started", "addr", server.Addr, "env", cfg.Env, "store", cfg.ExchangeDB.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("http server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slogger.Error("graceful shutdown failed", "error", err.Error())
	}
	slogger.Info("exchange service stopped")
}
