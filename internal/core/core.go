package core

import (
	"context"
	"errors"
	"fmt"
	"qdoge/internal/repository"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrEpochNotFound error = errors.New("epoch not found")
var ErrDuplicateTrade error = errors.New("trade already ingested")
var ErrDuplicateEpoch error = errors.New("epoch already exists")
var ErrDuplicateResult error = errors.New("airdrop result already recorded")
var ErrRejectedWrite error = errors.New("write rejected by ledger constraints")

// Ledger tracks token trading activity for the loyalty program: wallets,
// the append-only trade ledger, weekly epochs and their airdrop results.
type Ledger struct {
	logs        *zap.SugaredLogger
	repo        Repository
	provisioner Provisioner
}

func NewLedger(logger *zap.SugaredLogger, repo Repository, provisioner Provisioner) *Ledger {
	return &Ledger{
		logs:        logger,
		repo:        repo,
		provisioner: provisioner,
	}
}

// RecordTrade ingests one external trade event. Wallets are registered
// on first interaction; the trade itself lands exactly once per tx hash.
func (l *Ledger) RecordTrade(ctx context.Context, msg TradeMessage) (TradeRecord, error) {
	if _, err := l.repo.EnsureUser(ctx, msg.TakerWallet); err != nil {
		return TradeRecord{}, fmt.Errorf("ensure taker wallet: %w", err)
	}

	if msg.MakerWallet != msg.TakerWallet {
		if _, err := l.repo.EnsureUser(ctx, msg.MakerWallet); err != nil {
			return TradeRecord{}, fmt.Errorf("ensure maker wallet: %w", err)
		}
	}

	trade, err := l.repo.InsertTrade(ctx, repository.Trade{
		Type:        repository.TradeType(msg.Type),
		Price:       msg.Price,
		Quantity:    msg.Quantity,
		TxHash:      msg.TxHash,
		TakerWallet: msg.TakerWallet,
		MakerWallet: msg.MakerWallet,
		Tickdate:    msg.Tickdate,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateTrade):
			return TradeRecord{}, fmt.Errorf("%w: %s", ErrDuplicateTrade, msg.TxHash)
		case errors.Is(err, repository.ErrInvalidTrade):
			return TradeRecord{}, fmt.Errorf("%w: %s", ErrRejectedWrite, err)
		}
		return TradeRecord{}, fmt.Errorf("insert trade: %w", err)
	}

	l.logs.Infow("trade recorded",
		"txHash", trade.TxHash,
		"type", trade.Type,
		"taker", trade.TakerWallet,
		"maker", trade.MakerWallet)

	return tradeToRecord(trade), nil
}

// TradesForWallet returns the wallet's trades on the requested side of
// the book, or both sides when side is empty.
func (l *Ledger) TradesForWallet(ctx context.Context, walletID string, side string) ([]TradeRecord, error) {
	var trades []repository.Trade

	switch side {
	case "taker":
		taken, err := l.repo.TradesByTaker(ctx, walletID)
		if err != nil {
			return nil, fmt.Errorf("trades by taker: %w", err)
		}
		trades = taken
	case "maker":
		made, err := l.repo.TradesByMaker(ctx, walletID)
		if err != nil {
			return nil, fmt.Errorf("trades by maker: %w", err)
		}
		trades = made
	default:
		taken, err := l.repo.TradesByTaker(ctx, walletID)
		if err != nil {
			return nil, fmt.Errorf("trades by taker: %w", err)
		}
		made, err := l.repo.TradesByMaker(ctx, walletID)
		if err != nil {
			return nil, fmt.Errorf("trades by maker: %w", err)
		}
		trades = append(taken, made...)
	}

	return tradesToRecords(trades), nil
}

func (l *Ledger) TradesBetween(ctx context.Context, from, to time.Time) ([]TradeRecord, error) {
	trades, err := l.repo.TradesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("trades between: %w", err)
	}

	return tradesToRecords(trades), nil
}

func (l *Ledger) GetWallet(ctx context.Context, walletID string) (WalletRecord, error) {
	user, err := l.repo.GetUser(ctx, walletID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return WalletRecord{}, ErrWalletNotFound
		}
		return WalletRecord{}, fmt.Errorf("get user: %w", err)
	}

	return WalletRecord{
		WalletID:  user.WalletID,
		QubicBal:  user.QubicBal,
		QdogeBal:  user.QdogeBal,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// SetBalances overwrites a wallet's balances with externally computed
// values. No transfer arithmetic happens here.
func (l *Ledger) SetBalances(ctx context.Context, walletID string, qubicBal, qdogeBal decimal.Decimal) error {
	err := l.repo.UpdateBalances(ctx, walletID, qubicBal, qdogeBal)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("update balances: %w", err)
	}

	l.logs.Infow("balances updated", "wallet", walletID)
	return nil
}

func (l *Ledger) PromoteWallet(ctx context.Context, walletID string) error {
	err := l.repo.SetRole(ctx, walletID, repository.UserRoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("set role: %w", err)
	}

	l.logs.Infow("wallet promoted to admin", "wallet", walletID)
	return nil
}

// OpenEpoch registers a new epoch window.
func (l *Ledger) OpenEpoch(ctx context.Context, msg EpochMessage) (EpochRecord, error) {
	epoch, err := l.repo.CreateEpoch(ctx, repository.Epoch{
		EpochNum:     msg.EpochNum,
		StartTick:    msg.StartTick,
		EndTick:      msg.EndTick,
		TotalAirdrop: msg.TotalAirdrop,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEpoch):
			return EpochRecord{}, fmt.Errorf("%w: %d", ErrDuplicateEpoch, msg.EpochNum)
		case errors.Is(err, repository.ErrInvalidEpoch):
			return EpochRecord{}, fmt.Errorf("%w: %s", ErrRejectedWrite, err)
		}
		return EpochRecord{}, fmt.Errorf("create epoch: %w", err)
	}

	l.logs.Infow("epoch opened",
		"epoch", epoch.EpochNum,
		"start", epoch.StartTick,
		"end", epoch.EndTick)

	return epochToRecord(epoch), nil
}

func (l *Ledger) GetEpoch(ctx context.Context, epochNum int64) (EpochRecord, error) {
	epoch, err := l.repo.GetEpoch(ctx, epochNum)
	if err != nil {
		if errors.Is(err, repository.ErrEpochNotFound) {
			return EpochRecord{}, ErrEpochNotFound
		}
		return EpochRecord{}, fmt.Errorf("get epoch: %w", err)
	}

	return epochToRecord(epoch), nil
}

// FundEpoch sets the epoch's total airdrop allocation once the reward
// computation has completed.
func (l *Ledger) FundEpoch(ctx context.Context, epochNum int64, total decimal.Decimal) error {
	err := l.repo.SetTotalAirdrop(ctx, epochNum, total)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEpochNotFound):
			return ErrEpochNotFound
		case errors.Is(err, repository.ErrInvalidEpoch):
			return fmt.Errorf("%w: %s", ErrRejectedWrite, err)
		}
		return fmt.Errorf("set total airdrop: %w", err)
	}

	l.logs.Infow("epoch funded", "epoch", epochNum, "totalAirdrop", total)
	return nil
}

func (l *Ledger) RemoveEpoch(ctx context.Context, epochNum int64) error {
	err := l.repo.DeleteEpoch(ctx, epochNum)
	if err != nil {
		if errors.Is(err, repository.ErrEpochNotFound) {
			return ErrEpochNotFound
		}
		return fmt.Errorf("delete epoch: %w", err)
	}

	l.logs.Infow("epoch removed with its airdrop results", "epoch", epochNum)
	return nil
}

// RecordAirdropResults stores one epoch's finalized top-10 ranking as a
// single batch. Reused grades, twice-ranked wallets and out-of-range
// grades fail the whole batch.
func (l *Ledger) RecordAirdropResults(ctx context.Context, epochNum int64, entries []AirdropEntry) error {
	results := make([]repository.AirdropResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, repository.AirdropResult{
			EpochNum:          epochNum,
			Grade:             entry.Grade,
			WalletID:          entry.WalletID,
			UserBuyAmount:     entry.UserBuyAmount,
			UserAirdropAmount: entry.UserAirdropAmount,
		})
	}

	err := l.repo.SaveAirdropResults(ctx, results)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateResult):
			return fmt.Errorf("%w: %s", ErrDuplicateResult, err)
		case errors.Is(err, repository.ErrInvalidResult):
			return fmt.Errorf("%w: %s", ErrRejectedWrite, err)
		case errors.Is(err, repository.ErrMissingReference):
			return fmt.Errorf("%w: %s", ErrRejectedWrite, err)
		}
		return fmt.Errorf("save airdrop results: %w", err)
	}

	l.logs.Infow("airdrop results recorded", "epoch", epochNum, "entries", len(entries))
	return nil
}

func (l *Ledger) EpochResults(ctx context.Context, epochNum int64) ([]AirdropEntry, error) {
	results, err := l.repo.AirdropResultsByEpoch(ctx, epochNum)
	if err != nil {
		return nil, fmt.Errorf("airdrop results by epoch: %w", err)
	}

	return resultsToEntries(results), nil
}

func (l *Ledger) WalletResults(ctx context.Context, walletID string) ([]AirdropEntry, error) {
	results, err := l.repo.AirdropResultsByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("airdrop results by wallet: %w", err)
	}

	return resultsToEntries(results), nil
}

// Reprovision re-runs the full provisioning procedure on demand.
func (l *Ledger) Reprovision(ctx context.Context) error {
	if err := l.provisioner.Run(ctx); err != nil {
		return fmt.Errorf("run provisioner: %w", err)
	}

	l.logs.Infow("database reprovisioned")
	return nil
}

func tradeToRecord(trade repository.Trade) TradeRecord {
	return TradeRecord{
		TradeID:     trade.TradeID,
		Type:        string(trade.Type),
		Price:       trade.Price,
		Quantity:    trade.Quantity,
		TxHash:      trade.TxHash,
		TakerWallet: trade.TakerWallet,
		MakerWallet: trade.MakerWallet,
		Tickdate:    trade.Tickdate,
	}
}

func tradesToRecords(trades []repository.Trade) []TradeRecord {
	records := make([]TradeRecord, len(trades))
	for i, trade := range trades {
		records[i] = tradeToRecord(trade)
	}
	return records
}

func epochToRecord(epoch repository.Epoch) EpochRecord {
	return EpochRecord{
		EpochNum:     epoch.EpochNum,
		StartTick:    epoch.StartTick,
		EndTick:      epoch.EndTick,
		TotalAirdrop: epoch.TotalAirdrop,
	}
}

func resultsToEntries(results []repository.AirdropResult) []AirdropEntry {
	entries := make([]AirdropEntry, len(results))
	for i, result := range results {
		entries[i] = AirdropEntry{
			Grade:             result.Grade,
			WalletID:          result.WalletID,
			UserBuyAmount:     result.UserBuyAmount,
			UserAirdropAmount: result.UserAirdropAmount,
		}
	}
	return entries
}
