// file: internals/features/donations/service/midtrans.go
package service

import (
	"context"
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"churchheroes_backend/internals/features/donations/model"
)

// MidtransGateway is the alternate provider, using Midtrans Snap for the
// hosted payment page and Core API for verification. Midtrans bills in
// whole currency units, so no minor-unit conversion happens here.
type MidtransGateway struct {
	snapClient snap.Client
	coreClient coreapi.Client
	serverKey  string
}

func NewMidtransGateway(serverKey string) *MidtransGateway {
	g := &MidtransGateway{serverKey: serverKey}
	g.snapClient.New(serverKey, midtrans.Sandbox)
	g.coreClient.New(serverKey, midtrans.Sandbox)
	return g
}

func (g *MidtransGateway) Name() string { return "midtrans" }

func (g *MidtransGateway) Initiate(_ context.Context, p InitiateParams) (*InitiateResult, error) {
	if g.serverKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.Reference,
			GrossAmt: p.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: p.Email,
		},
	}

	resp, err := g.snapClient.CreateTransaction(req)
	if err != nil {
		return nil, errors.New("payment initialization failed")
	}

	return &InitiateResult{
		AuthorizationURL: resp.RedirectURL,
		Reference:        p.Reference,
	}, nil
}

func (g *MidtransGateway) Verify(_ context.Context, reference string) (model.DonationStatus, error) {
	if g.serverKey == "" {
		return "", ErrGatewayNotConfigured
	}

	resp, err := g.coreClient.CheckTransaction(reference)
	if err != nil {
		return "", errors.New("payment verification failed")
	}
	return MapMidtransStatus(resp.TransactionStatus), nil
}

// MapMidtransStatus folds Midtrans transaction states into ours.
func MapMidtransStatus(s string) model.DonationStatus {
	switch s {
	case "capture", "settlement":
		return model.DonationPaid
	case "deny", "cancel", "failure":
		return model.DonationFailed
	case "expire":
		return model.DonationAbandoned
	default:
		return model.DonationPending
	}
}
