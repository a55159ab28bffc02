package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchheroes_backend/internals/features/donations/model"
)

func TestPaystackInitiate(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "CHC-1-deadbeef"
			}
		}`))
	}))
	defer srv.Close()

	g := NewPaystackGatewayWithBase("sk_test_secret", srv.URL)
	res, err := g.Initiate(context.Background(), InitiateParams{
		Email:     "giver@example.com",
		Amount:    5000,
		Currency:  "NGN",
		Reference: "CHC-1-deadbeef",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, float64(500000), gotBody["amount"], "amount must be sent in kobo")
	assert.Equal(t, "giver@example.com", gotBody["email"])
	assert.Equal(t, "CHC-1-deadbeef", gotBody["reference"])

	assert.Equal(t, "https://checkout.paystack.com/abc123", res.AuthorizationURL)
	assert.Equal(t, "CHC-1-deadbeef", res.Reference)
}

func TestPaystackInitiateDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	g := NewPaystackGatewayWithBase("sk_test_bad", srv.URL)
	_, err := g.Initiate(context.Background(), InitiateParams{
		Email: "giver@example.com", Amount: 500, Currency: "NGN", Reference: "r",
	})
	assert.Error(t, err)
}

func TestPaystackInitiateUnconfigured(t *testing.T) {
	g := NewPaystackGateway("")
	_, err := g.Initiate(context.Background(), InitiateParams{Email: "x@y.z", Amount: 500})
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
}

func TestPaystackVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/verify/CHC-1-deadbeef", r.URL.Path)
		require.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"status": true,
			"data": {"status": "success", "reference": "CHC-1-deadbeef"}
		}`))
	}))
	defer srv.Close()

	g := NewPaystackGatewayWithBase("sk_test_secret", srv.URL)
	status, err := g.Verify(context.Background(), "CHC-1-deadbeef")
	require.NoError(t, err)
	assert.Equal(t, model.DonationPaid, status)
}

func TestMapPaystackStatus(t *testing.T) {
	assert.Equal(t, model.DonationPaid, MapPaystackStatus("success"))
	assert.Equal(t, model.DonationFailed, MapPaystackStatus("failed"))
	assert.Equal(t, model.DonationFailed, MapPaystackStatus("reversed"))
	assert.Equal(t, model.DonationAbandoned, MapPaystackStatus("abandoned"))
	assert.Equal(t, model.DonationPending, MapPaystackStatus("ongoing"))
	assert.Equal(t, model.DonationPending, MapPaystackStatus(""))
}

func TestMapMidtransStatus(t *testing.T) {
	assert.Equal(t, model.DonationPaid, MapMidtransStatus("capture"))
	assert.Equal(t, model.DonationPaid, MapMidtransStatus("settlement"))
	assert.Equal(t, model.DonationFailed, MapMidtransStatus("deny"))
	assert.Equal(t, model.DonationFailed, MapMidtransStatus("cancel"))
	assert.Equal(t, model.DonationAbandoned, MapMidtransStatus("expire"))
	assert.Equal(t, model.DonationPending, MapMidtransStatus("pending"))
}
