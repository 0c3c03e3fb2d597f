package handler

import (
	"context"
	"net/http"
	"qdoge/internal/core"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	RecordTrade(ctx context.Context, msg core.TradeMessage) (core.TradeRecord, error)
	TradesForWallet(ctx context.Context, walletID string, side string) ([]core.TradeRecord, error)
	TradesBetween(ctx context.Context, from, to time.Time) ([]core.TradeRecord, error)
	GetWallet(ctx context.Context, walletID string) (core.WalletRecord, error)
	SetBalances(ctx context.Context, walletID string, qubicBal, qdogeBal decimal.Decimal) error
	PromoteWallet(ctx context.Context, walletID string) error
	OpenEpoch(ctx context.Context, msg core.EpochMessage) (core.EpochRecord, error)
	GetEpoch(ctx context.Context, epochNum int64) (core.EpochRecord, error)
	FundEpoch(ctx context.Context, epochNum int64, total decimal.Decimal) error
	RemoveEpoch(ctx context.Context, epochNum int64) error
	RecordAirdropResults(ctx context.Context, epochNum int64, entries []core.AirdropEntry) error
	EpochResults(ctx context.Context, epochNum int64) ([]core.AirdropEntry, error)
	WalletResults(ctx context.Context, walletID string) ([]core.AirdropEntry, error)
	Reprovision(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}
