package payload

import (
	"fmt"
	"qdoge/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

const maxGrade = 10

type AirdropResultEntry struct {
	Grade             int64           `json:"grade"`
	WalletID          string          `json:"walletId"`
	UserBuyAmount     decimal.Decimal `json:"userBuyAmount"`
	UserAirdropAmount decimal.Decimal `json:"userAirdropAmount"`
}

func (a AirdropResultEntry) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Grade, validation.Required, validation.Min(int64(1)), validation.Max(int64(maxGrade))),
		validation.Field(&a.WalletID, validation.Required, validation.Length(1, maxWalletLen)),
		validation.Field(&a.UserBuyAmount, validation.By(decimalNonNegative)),
		validation.Field(&a.UserAirdropAmount, validation.By(decimalNonNegative)),
	)
}

type AirdropResultsRequest struct {
	Results []AirdropResultEntry `json:"results"`
}

func (r AirdropResultsRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Results, validation.Required, validation.Length(1, maxGrade)),
	)
	if err != nil {
		return err
	}

	for _, entry := range r.Results {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("result grade %d: %w", entry.Grade, err)
		}
	}

	return nil
}

func (r AirdropResultsRequest) ToEntries() []core.AirdropEntry {
	entries := make([]core.AirdropEntry, 0, len(r.Results))
	for _, result := range r.Results {
		entries = append(entries, core.AirdropEntry{
			Grade:             result.Grade,
			WalletID:          result.WalletID,
			UserBuyAmount:     result.UserBuyAmount,
			UserAirdropAmount: result.UserAirdropAmount,
		})
	}
	return entries
}
