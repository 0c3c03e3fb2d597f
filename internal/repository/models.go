package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole mirrors the persisted user_role enum type.
type UserRole string

const (
	UserRoleNormal UserRole = "normal"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == UserRoleNormal || r == UserRoleAdmin
}

// TradeType mirrors the persisted trade_type enum type.
type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

func (t TradeType) Valid() bool {
	return t == TradeTypeBuy || t == TradeTypeSell
}

// User holds one row per wallet. Timestamps are assigned by the write
// path, never by ORM hooks.
type User struct {
	WalletID  string          `gorm:"column:wallet_id;type:varchar(60);primaryKey"`
	QubicBal  decimal.Decimal `gorm:"column:qubic_bal;type:numeric(38,0);not null;default:0"`
	QdogeBal  decimal.Decimal `gorm:"column:qdoge_bal;type:numeric(38,0);not null;default:0"`
	Role      UserRole        `gorm:"column:role;type:user_role;not null;default:normal"`
	CreatedAt time.Time       `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt time.Time       `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime:false"`
}

func (User) TableName() string {
	return "user"
}

// Trade is an append-only ledger row: inserted once, never updated or
// deleted. For type=buy the taker is the buyer of qdoge, for type=sell
// the maker is.
type Trade struct {
	TradeID     int64           `gorm:"column:trade_id;primaryKey"`
	Type        TradeType       `gorm:"column:type;type:trade_type;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(38,18);not null;check:ck_trade_price_positive,price > 0"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:numeric(38,0);not null;check:ck_trade_quantity_positive,quantity > 0"`
	TxHash      string          `gorm:"column:tx_hash;type:varchar(128);uniqueIndex:ux_trade_tx_hash;not null"`
	TakerWallet string          `gorm:"column:taker_wallet;type:varchar(60);not null;index:ix_trade_taker_wallet;index:ix_trade_tickdate_taker,priority:2"`
	MakerWallet string          `gorm:"column:maker_wallet;type:varchar(60);not null;index:ix_trade_maker_wallet;index:ix_trade_tickdate_maker,priority:2"`
	Tickdate    time.Time       `gorm:"column:tickdate;type:timestamptz;not null;index:ix_trade_tickdate;index:ix_trade_tickdate_taker,priority:1;index:ix_trade_tickdate_maker,priority:1"`
}

func (Trade) TableName() string {
	return "trade"
}

// Epoch is one weekly window over which purchases are aggregated for the
// airdrop ranking.
type Epoch struct {
	EpochNum     int64           `gorm:"column:epoch_num;primaryKey;autoIncrement:false"`
	StartTick    time.Time       `gorm:"column:start_tick;type:timestamptz;not null;index:ix_epoch_start_tick;check:ck_epoch_valid_range,end_tick > start_tick"`
	EndTick      time.Time       `gorm:"column:end_tick;type:timestamptz;not null;index:ix_epoch_end_tick"`
	TotalAirdrop decimal.Decimal `gorm:"column:total_airdrop;type:numeric(38,0);not null;default:0;check:ck_epoch_airdrop_non_negative,total_airdrop >= 0"`
}

func (Epoch) TableName() string {
	return "epoch"
}

// AirdropResult ranks the top-10 buyers of one epoch. The composite
// primary key spends each grade once per epoch; uq_airdrop_epoch_wallet
// keeps a wallet from being ranked twice in the same epoch.
type AirdropResult struct {
	EpochNum          int64           `gorm:"column:epoch_num;primaryKey;autoIncrement:false;uniqueIndex:uq_airdrop_epoch_wallet,priority:1;index:ix_airdrop_result_epoch"`
	Grade             int64           `gorm:"column:grade;primaryKey;autoIncrement:false;check:ck_airdrop_grade_range,grade >= 1 AND grade <= 10"`
	WalletID          string          `gorm:"column:wallet_id;type:varchar(60);not null;uniqueIndex:uq_airdrop_epoch_wallet,priority:2;index:ix_airdrop_result_wallet"`
	UserBuyAmount     decimal.Decimal `gorm:"column:user_buy_amount;type:numeric(38,0);not null;check:ck_airdrop_buy_amount_non_negative,user_buy_amount >= 0"`
	UserAirdropAmount decimal.Decimal `gorm:"column:user_airdrop_amount;type:numeric(38,0);not null;check:ck_airdrop_amount_non_negative,user_airdrop_amount >= 0"`
}

func (AirdropResult) TableName() string {
	return "airdrop_result"
}
