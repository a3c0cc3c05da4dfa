package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrChargeDeclined = fmt.Errorf("charge was declined by the payment processor")
	ErrPayoutRejected = fmt.Errorf("payout was rejected by the payment processor")
)

type ChargeRequest struct {
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

type ChargeResult struct {
	Reference  string `json:"reference"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}

type PayoutRequest struct {
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

type PayoutResult struct {
	Reference  string `json:"reference"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}

// Gateway is the money-in and money-out boundary. Charge pulls real funds
// in before a wallet recharge is credited; Payout pushes funds out after a
// withdrawal is debited.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	Payout(ctx context.Context, req PayoutRequest) (PayoutResult, error)
}
