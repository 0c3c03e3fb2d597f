package payload

import (
	"errors"
	"qdoge/internal/core"
	"time"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

const maxWalletLen = 60
const maxTxHashLen = 128

type TradeRequest struct {
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	TxHash      string          `json:"txHash"`
	TakerWallet string          `json:"takerWallet"`
	MakerWallet string          `json:"makerWallet"`
	Tickdate    time.Time       `json:"tickdate"`
}

func (t TradeRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Type, validation.Required, validation.In("buy", "sell")),
		validation.Field(&t.Price, validation.By(decimalPositive)),
		validation.Field(&t.Quantity, validation.By(decimalPositive), validation.By(decimalIntegral)),
		validation.Field(&t.TxHash, validation.Required, validation.Length(1, maxTxHashLen)),
		validation.Field(&t.TakerWallet, validation.Required, validation.Length(1, maxWalletLen)),
		validation.Field(&t.MakerWallet, validation.Required, validation.Length(1, maxWalletLen)),
		validation.Field(&t.Tickdate, validation.Required),
	)
}

func (t TradeRequest) ToMessage() core.TradeMessage {
	return core.TradeMessage{
		Type:        t.Type,
		Price:       t.Price,
		Quantity:    t.Quantity,
		TxHash:      t.TxHash,
		TakerWallet: t.TakerWallet,
		MakerWallet: t.MakerWallet,
		Tickdate:    t.Tickdate,
	}
}

func decimalPositive(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal number")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func decimalNonNegative(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal number")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func decimalIntegral(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal number")
	}
	if !d.IsInteger() {
		return errors.New("must be a whole number")
	}
	return nil
}
