package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DeltaPlay/DeltaPlay-Backend/providers"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
)

// PayCoreGateway talks to the external card processor over HTTP.
type PayCoreGateway struct {
	providers.BaseProvider
}

func NewPayCoreGateway(config *utils.Config) *PayCoreGateway {
	return &PayCoreGateway{
		BaseProvider: providers.BaseProvider{
			Name:    providers.PayCore,
			BaseURL: config.PaymentGatewayURL,
			APIKey:  config.PaymentGatewayKey,
			Client:  &http.Client{Timeout: 30 * time.Second},
		},
	}
}

type payCoreResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (g *PayCoreGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	url := fmt.Sprintf("%s/v1/charges", g.BaseURL)
	resp, err := g.MakeRequest(ctx, http.MethodPost, url, req, nil)
	if err != nil {
		return ChargeResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity {
		return ChargeResult{}, ErrChargeDeclined
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ChargeResult{}, fmt.Errorf("unexpected gateway response: %s", resp.Status)
	}

	var body payCoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ChargeResult{}, fmt.Errorf("could not decode gateway response: %w", err)
	}
	return ChargeResult{
		Reference:  req.Reference,
		ExternalID: body.ID,
		Status:     body.Status,
	}, nil
}

func (g *PayCoreGateway) Payout(ctx context.Context, req PayoutRequest) (PayoutResult, error) {
	url := fmt.Sprintf("%s/v1/payouts", g.BaseURL)
	resp, err := g.MakeRequest(ctx, http.MethodPost, url, req, nil)
	if err != nil {
		return PayoutResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return PayoutResult{}, ErrPayoutRejected
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return PayoutResult{}, fmt.Errorf("unexpected gateway response: %s", resp.Status)
	}

	var body payCoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PayoutResult{}, fmt.Errorf("could not decode gateway response: %w", err)
	}
	return PayoutResult{
		Reference:  req.Reference,
		ExternalID: body.ID,
		Status:     body.Status,
	}, nil
}
