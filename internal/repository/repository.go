package repository

import (
	"context"
	"errors"
	"fmt"
	"qdoge/internal/db"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEpochNotFound error = errors.New("epoch not found")
var ErrDuplicateTrade error = errors.New("trade already ingested")
var ErrDuplicateEpoch error = errors.New("epoch already exists")
var ErrDuplicateResult error = errors.New("airdrop result already recorded")
var ErrInvalidTrade error = errors.New("trade violates ledger constraints")
var ErrInvalidEpoch error = errors.New("epoch violates constraints")
var ErrInvalidResult error = errors.New("airdrop result violates constraints")
var ErrMissingReference error = errors.New("referenced row does not exist")

var timeNow = time.Now

// LedgerRepository holds all reads and writes against the four ledger
// tables. Write methods stamp created_at/updated_at themselves.
type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

// MigrateTables creates the ledger tables if they do not exist yet.
func (r *LedgerRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Trade{}, &Epoch{}, &AirdropResult{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// EnsureUser registers a wallet on first interaction. Existing wallets
// are returned untouched.
func (r *LedgerRepository) EnsureUser(ctx context.Context, walletID string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "wallet_id", walletID, &user)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}

	now := timeNow().UTC()
	user = User{
		WalletID:  walletID,
		QubicBal:  decimal.Zero,
		QdogeBal:  decimal.Zero,
		Role:      UserRoleNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = r.db.Insert(ctx, &user)
	if err != nil {
		// a concurrent writer may have registered the wallet first
		if errors.Is(err, db.ErrDuplicate) {
			var existing User
			if getErr := r.db.GetOneBy(ctx, "wallet_id", walletID, &existing); getErr == nil {
				return existing, nil
			}
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *LedgerRepository) GetUser(ctx context.Context, walletID string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "wallet_id", walletID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}

	return user, nil
}

// UpdateBalances overwrites both balances of a wallet and advances
// updated_at.
func (r *LedgerRepository) UpdateBalances(ctx context.Context, walletID string, qubicBal, qdogeBal decimal.Decimal) error {
	updates := map[string]any{
		"qubic_bal":  qubicBal,
		"qdoge_bal":  qdogeBal,
		"updated_at": timeNow().UTC(),
	}

	err := r.db.UpdateColumns(ctx, &User{}, "wallet_id", walletID, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update balances: %w", err)
	}

	return nil
}

func (r *LedgerRepository) SetRole(ctx context.Context, walletID string, role UserRole) error {
	updates := map[string]any{
		"role":       role,
		"updated_at": timeNow().UTC(),
	}

	err := r.db.UpdateColumns(ctx, &User{}, "wallet_id", walletID, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("set role: %w", err)
	}

	return nil
}

// InsertTrade appends one ledger entry. The tx_hash unique index is the
// idempotency key: re-ingesting the same external transaction fails with
// ErrDuplicateTrade.
func (r *LedgerRepository) InsertTrade(ctx context.Context, trade Trade) (Trade, error) {
	err := r.db.Insert(ctx, &trade)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicate):
			return Trade{}, fmt.Errorf("%w: %s", ErrDuplicateTrade, trade.TxHash)
		case errors.Is(err, db.ErrCheckViolation):
			return Trade{}, fmt.Errorf("%w: %s", ErrInvalidTrade, err)
		case errors.Is(err, db.ErrForeignKey):
			return Trade{}, fmt.Errorf("%w: taker or maker wallet", ErrUserNotFound)
		}
		return Trade{}, fmt.Errorf("insert trade: %w", err)
	}

	return trade, nil
}

func (r *LedgerRepository) TradesByTaker(ctx context.Context, walletID string) ([]Trade, error) {
	trades := []Trade{}
	if err := r.db.GetAllBy(ctx, "taker_wallet", walletID, &trades); err != nil {
		return nil, fmt.Errorf("get trades by taker: %w", err)
	}
	return trades, nil
}

func (r *LedgerRepository) TradesByMaker(ctx context.Context, walletID string) ([]Trade, error) {
	trades := []Trade{}
	if err := r.db.GetAllBy(ctx, "maker_wallet", walletID, &trades); err != nil {
		return nil, fmt.Errorf("get trades by maker: %w", err)
	}
	return trades, nil
}

// TradesBetween returns all trades with from <= tickdate < to, oldest
// first.
func (r *LedgerRepository) TradesBetween(ctx context.Context, from, to time.Time) ([]Trade, error) {
	trades := []Trade{}
	err := r.db.Find(ctx, &trades, "tickdate asc", "tickdate >= ? AND tickdate < ?", from, to)
	if err != nil {
		return nil, fmt.Errorf("get trades between: %w", err)
	}
	return trades, nil
}

func (r *LedgerRepository) CreateEpoch(ctx context.Context, epoch Epoch) (Epoch, error) {
	err := r.db.Insert(ctx, &epoch)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicate):
			return Epoch{}, fmt.Errorf("%w: %d", ErrDuplicateEpoch, epoch.EpochNum)
		case errors.Is(err, db.ErrCheckViolation):
			return Epoch{}, fmt.Errorf("%w: %s", ErrInvalidEpoch, err)
		}
		return Epoch{}, fmt.Errorf("insert epoch: %w", err)
	}

	return epoch, nil
}

func (r *LedgerRepository) GetEpoch(ctx context.Context, epochNum int64) (Epoch, error) {
	var epoch Epoch

	err := r.db.GetOneBy(ctx, "epoch_num", epochNum, &epoch)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Epoch{}, ErrEpochNotFound
		}
		return Epoch{}, fmt.Errorf("get epoch: %w", err)
	}

	return epoch, nil
}

// SetTotalAirdrop records the allocation once the reward computation for
// the epoch has completed.
func (r *LedgerRepository) SetTotalAirdrop(ctx context.Context, epochNum int64, total decimal.Decimal) error {
	updates := map[string]any{
		"total_airdrop": total,
	}

	err := r.db.UpdateColumns(ctx, &Epoch{}, "epoch_num", epochNum, updates)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			return ErrEpochNotFound
		case errors.Is(err, db.ErrCheckViolation):
			return fmt.Errorf("%w: %s", ErrInvalidEpoch, err)
		}
		return fmt.Errorf("set total airdrop: %w", err)
	}

	return nil
}

// DeleteEpoch removes an epoch; its airdrop results go with it through
// the cascading foreign key.
func (r *LedgerRepository) DeleteEpoch(ctx context.Context, epochNum int64) error {
	err := r.db.DeleteBy(ctx, &Epoch{}, "epoch_num", epochNum)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrEpochNotFound
		}
		return fmt.Errorf("delete epoch: %w", err)
	}

	return nil
}

// SaveAirdropResults writes one epoch's ranking in a single transaction.
// Grade reuse or a wallet ranked twice fails the whole batch.
func (r *LedgerRepository) SaveAirdropResults(ctx context.Context, results []AirdropResult) error {
	if len(results) == 0 {
		return nil
	}

	err := r.db.InsertBatch(ctx, &results)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicate):
			return fmt.Errorf("%w: %s", ErrDuplicateResult, err)
		case errors.Is(err, db.ErrCheckViolation):
			return fmt.Errorf("%w: %s", ErrInvalidResult, err)
		case errors.Is(err, db.ErrForeignKey):
			return fmt.Errorf("%w: %s", ErrMissingReference, err)
		}
		return fmt.Errorf("save airdrop results: %w", err)
	}

	return nil
}

func (r *LedgerRepository) AirdropResultsByEpoch(ctx context.Context, epochNum int64) ([]AirdropResult, error) {
	results := []AirdropResult{}
	err := r.db.Find(ctx, &results, "grade asc", "epoch_num = ?", epochNum)
	if err != nil {
		return nil, fmt.Errorf("get airdrop results by epoch: %w", err)
	}
	return results, nil
}

func (r *LedgerRepository) AirdropResultsByWallet(ctx context.Context, walletID string) ([]AirdropResult, error) {
	results := []AirdropResult{}
	if err := r.db.GetAllBy(ctx, "wallet_id", walletID, &results); err != nil {
		return nil, fmt.Errorf("get airdrop results by wallet: %w", err)
	}
	return results, nil
}
