// file: internals/features/donations/service/paystack.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"churchheroes_backend/internals/features/donations/model"
)

const paystackBaseURL = "https://api.paystack.co"

// PaystackGateway talks to the Paystack transaction API. The secret key is
// attached as a Bearer token on every call and never leaves the server.
type PaystackGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystackGateway(secretKey string) *PaystackGateway {
	return &PaystackGateway{
		secretKey: secretKey,
		baseURL:   paystackBaseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewPaystackGatewayWithBase exists for tests pointing at a mock server.
func NewPaystackGatewayWithBase(secretKey, baseURL string) *PaystackGateway {
	g := NewPaystackGateway(secretKey)
	g.baseURL = baseURL
	return g
}

func (g *PaystackGateway) Name() string { return "paystack" }

type paystackInitRequest struct {
	Email       string                 `json:"email"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	Reference   string                 `json:"reference"`
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Initiate converts the amount to kobo (×100) and forwards to the
// initialize endpoint. The authorization URL comes back verbatim.
func (g *PaystackGateway) Initiate(ctx context.Context, p InitiateParams) (*InitiateResult, error) {
	if g.secretKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	meta := map[string]interface{}{"church": "Christian Heroes Church"}
	for k, v := range p.Metadata {
		meta[k] = v
	}

	body := paystackInitRequest{
		Email:       p.Email,
		Amount:      p.Amount * 100,
		Currency:    p.Currency,
		Reference:   p.Reference,
		CallbackURL: p.CallbackURL,
		Metadata:    meta,
	}
	buf, err := sonic.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/transaction/initialize", bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out paystackInitResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("paystack: bad response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Status {
		log.Printf("[ERROR] paystack initialize failed: status=%d message=%s", resp.StatusCode, out.Message)
		return nil, errors.New("payment initialization failed")
	}

	return &InitiateResult{
		AuthorizationURL: out.Data.AuthorizationURL,
		Reference:        out.Data.Reference,
	}, nil
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
	} `json:"data"`
}

// Verify asks Paystack for the transaction state by reference.
func (g *PaystackGateway) Verify(ctx context.Context, reference string) (model.DonationStatus, error) {
	if g.secretKey == "" {
		return "", ErrGatewayNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out paystackVerifyResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("paystack: bad verify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Status {
		log.Printf("[ERROR] paystack verify failed: status=%d message=%s", resp.StatusCode, out.Message)
		return "", errors.New("payment verification failed")
	}

	return MapPaystackStatus(out.Data.Status), nil
}

// MapPaystackStatus folds Paystack transaction states into ours.
func MapPaystackStatus(s string) model.DonationStatus {
	switch s {
	case "success":
		return model.DonationPaid
	case "failed", "reversed":
		return model.DonationFailed
	case "abandoned":
		return model.DonationAbandoned
	default:
		return model.DonationPending
	}
}
