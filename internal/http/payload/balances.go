package payload

import (
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type BalancesRequest struct {
	QubicBal decimal.Decimal `json:"qubicBal"`
	QdogeBal decimal.Decimal `json:"qdogeBal"`
}

func (b BalancesRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.QubicBal, validation.By(decimalNonNegative), validation.By(decimalIntegral)),
		validation.Field(&b.QdogeBal, validation.By(decimalNonNegative), validation.By(decimalIntegral)),
	)
}
