package payment

import (
	"context"
	"fmt"
)

// SandboxGateway approves everything. Used in development and tests so the
// wallet flows can run without a processor account.
type SandboxGateway struct{}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{}
}

func (g *SandboxGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	return ChargeResult{
		Reference:  req.Reference,
		ExternalID: fmt.Sprintf("sandbox-charge-%s", req.Reference),
		Status:     "succeeded",
	}, nil
}

func (g *SandboxGateway) Payout(ctx context.Context, req PayoutRequest) (PayoutResult, error) {
	return PayoutResult{
		Reference:  req.Reference,
		ExternalID: fmt.Sprintf("sandbox-payout-%s", req.Reference),
		Status:     "succeeded",
	}, nil
}
