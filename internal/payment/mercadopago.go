package payment

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type DepositRequest struct {
	Title     string
	Amount    float64 // BRL
	Reference string  // appointment public code
}

// Deposits creates Mercado Pago checkout preferences for booking deposits.
type Deposits struct {
	client preference.Client
}

// NewDeposits returns nil when no access token is configured, which disables
// deposits entirely.
func NewDeposits(accessToken string) (*Deposits, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Deposits{client: preference.NewClient(cfg)}, nil
}

// CreatePreference returns the checkout URL for the deposit.
func (d *Deposits) CreatePreference(ctx context.Context, req DepositRequest) (string, error) {
	resp, err := d.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     req.Title,
				Quantity:  1,
				UnitPrice: req.Amount,
			},
		},
		ExternalReference: req.Reference,
	})
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
