package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"qdoge/internal/config"
	"qdoge/internal/core"
	"qdoge/internal/db"
	"qdoge/internal/http/handler"
	"qdoge/internal/http/handler/middleware"
	"qdoge/internal/http/payload"
	"qdoge/internal/http/server"
	"qdoge/internal/provision"
	"qdoge/internal/repository"
	"qdoge/pkg/jwt"
	"qdoge/pkg/log"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	logger := log.NewZapLogger("qdoge", zapcore.InfoLevel)
	defer logger.Sync()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	// provisioning failure means an unusable deployment, abort startup
	provisioner := provision.NewProvisioner(logger, config)
	if err := provisioner.Run(context.Background()); err != nil {
		logger.Errorw("failed to provision database", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close connection pool", "error", err)
		}
	}()

	// jwt service guarding the admin endpoints
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	// ledger
	ledger := core.NewLedger(logger, repo, provisioner)

	// handler
	qdogeHlr := handler.NewQdogeHandler(
		logger,
		payload.Decoder{},
		jwtService,
		ledger)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.ServiceInfo, qdogeHlr.HandleServiceInfo)
	mux.HandleFunc(handler.InitDB, qdogeHlr.HandleInitDB)
	mux.HandleFunc(handler.IngestTrade, qdogeHlr.HandleIngestTrade)
	mux.HandleFunc(handler.GetTrades, qdogeHlr.HandleGetTrades)
	mux.HandleFunc(handler.GetWallet, qdogeHlr.HandleGetWallet)
	mux.HandleFunc(handler.SetBalances, qdogeHlr.HandleSetBalances)
	mux.HandleFunc(handler.PromoteWallet, qdogeHlr.HandlePromoteWallet)
	mux.HandleFunc(handler.GetWalletAwards, qdogeHlr.HandleGetWalletResults)
	mux.HandleFunc(handler.CreateEpoch, qdogeHlr.HandleCreateEpoch)
	mux.HandleFunc(handler.GetEpoch, qdogeHlr.HandleGetEpoch)
	mux.HandleFunc(handler.DeleteEpoch, qdogeHlr.HandleDeleteEpoch)
	mux.HandleFunc(handler.FundEpoch, qdogeHlr.HandleFundEpoch)
	mux.HandleFunc(handler.RecordResults, qdogeHlr.HandleRecordResults)
	mux.HandleFunc(handler.GetEpochResults, qdogeHlr.HandleGetEpochResults)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
