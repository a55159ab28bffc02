// file: internals/features/donations/service/gateway.go
package service

import (
	"context"
	"errors"
	"strings"

	"churchheroes_backend/internals/features/donations/model"
)

var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// InitiateParams carries the amount in major currency units; each gateway
// converts to its own denomination.
type InitiateParams struct {
	Email       string
	Amount      int64
	Currency    string
	Reference   string
	CallbackURL string
	Metadata    map[string]interface{}
}

type InitiateResult struct {
	AuthorizationURL string
	Reference        string
}

// Gateway is one hosted payment provider. Initiate is called once per
// donation attempt and never retried; Verify is the only path that may
// confirm a payment.
type Gateway interface {
	Name() string
	Initiate(ctx context.Context, p InitiateParams) (*InitiateResult, error)
	Verify(ctx context.Context, reference string) (model.DonationStatus, error)
}

var activeGateway Gateway

// InitGateway picks the provider from config at startup.
func InitGateway(name, paystackSecret, midtransServerKey string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "midtrans":
		activeGateway = NewMidtransGateway(midtransServerKey)
	default:
		activeGateway = NewPaystackGateway(paystackSecret)
	}
}

func ActiveGateway() (Gateway, error) {
	if activeGateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	return activeGateway, nil
}
