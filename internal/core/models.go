package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeMessage is one external trade event handed in for ingestion.
type TradeMessage struct {
	Type        string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	TxHash      string
	TakerWallet string
	MakerWallet string
	Tickdate    time.Time
}

type TradeRecord struct {
	TradeID     int64           `json:"tradeId"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	TxHash      string          `json:"txHash"`
	TakerWallet string          `json:"takerWallet"`
	MakerWallet string          `json:"makerWallet"`
	Tickdate    time.Time       `json:"tickdate"`
}

type WalletRecord struct {
	WalletID  string          `json:"walletId"`
	QubicBal  decimal.Decimal `json:"qubicBal"`
	QdogeBal  decimal.Decimal `json:"qdogeBal"`
	Role      string          `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type EpochMessage struct {
	EpochNum     int64
	StartTick    time.Time
	EndTick      time.Time
	TotalAirdrop decimal.Decimal
}

type EpochRecord struct {
	EpochNum     int64           `json:"epochNum"`
	StartTick    time.Time       `json:"startTick"`
	EndTick      time.Time       `json:"endTick"`
	TotalAirdrop decimal.Decimal `json:"totalAirdrop"`
}

// AirdropEntry is one ranked row of an epoch's final top-10.
type AirdropEntry struct {
	Grade             int64           `json:"grade"`
	WalletID          string          `json:"walletId"`
	UserBuyAmount     decimal.Decimal `json:"userBuyAmount"`
	UserAirdropAmount decimal.Decimal `json:"userAirdropAmount"`
}
