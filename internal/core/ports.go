package core

import (
	"context"
	"qdoge/internal/repository"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	EnsureUser(ctx context.Context, walletID string) (repository.User, error)
	GetUser(ctx context.Context, walletID string) (repository.User, error)
	UpdateBalances(ctx context.Context, walletID string, qubicBal, qdogeBal decimal.Decimal) error
	SetRole(ctx context.Context, walletID string, role repository.UserRole) error
	InsertTrade(ctx context.Context, trade repository.Trade) (repository.Trade, error)
	TradesByTaker(ctx context.Context, walletID string) ([]repository.Trade, error)
	TradesByMaker(ctx context.Context, walletID string) ([]repository.Trade, error)
	TradesBetween(ctx context.Context, from, to time.Time) ([]repository.Trade, error)
	CreateEpoch(ctx context.Context, epoch repository.Epoch) (repository.Epoch, error)
	GetEpoch(ctx context.Context, epochNum int64) (repository.Epoch, error)
	SetTotalAirdrop(ctx context.Context, epochNum int64, total decimal.Decimal) error
	DeleteEpoch(ctx context.Context, epochNum int64) error
	SaveAirdropResults(ctx context.Context, results []repository.AirdropResult) error
	AirdropResultsByEpoch(ctx context.Context, epochNum int64) ([]repository.AirdropResult, error)
	AirdropResultsByWallet(ctx context.Context, walletID string) ([]repository.AirdropResult, error)
}

//counterfeiter:generate -o fake -fake-name Provisioner . Provisioner
type Provisioner interface {
	Run(ctx context.Context) error
}
