package payload

import (
	"errors"
	"qdoge/internal/core"
	"time"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type EpochRequest struct {
	EpochNum     int64           `json:"epochNum"`
	StartTick    time.Time       `json:"startTick"`
	EndTick      time.Time       `json:"endTick"`
	TotalAirdrop decimal.Decimal `json:"totalAirdrop"`
}

func (e EpochRequest) Validate() error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.EpochNum, validation.Required, validation.Min(int64(1))),
		validation.Field(&e.StartTick, validation.Required),
		validation.Field(&e.EndTick, validation.Required),
		validation.Field(&e.TotalAirdrop, validation.By(decimalNonNegative)),
	)
	if err != nil {
		return err
	}

	if !e.EndTick.After(e.StartTick) {
		return errors.New("endTick must be after startTick")
	}

	return nil
}

// FundRequest sets an epoch's total airdrop allocation once the reward
// computation has finished.
type FundRequest struct {
	TotalAirdrop decimal.Decimal `json:"totalAirdrop"`
}

func (f FundRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.TotalAirdrop, validation.By(decimalNonNegative), validation.By(decimalIntegral)),
	)
}

func (e EpochRequest) ToMessage() core.EpochMessage {
	return core.EpochMessage{
		EpochNum:     e.EpochNum,
		StartTick:    e.StartTick,
		EndTick:      e.EndTick,
		TotalAirdrop: e.TotalAirdrop,
	}
}
