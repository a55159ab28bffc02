package dto

import (
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestInitiateDonationValidation(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		req     InitiateDonationRequest
		wantErr bool
	}{
		{"valid", InitiateDonationRequest{DonationEmail: "giver@example.com", DonationAmount: 100}, false},
		{"large amount", InitiateDonationRequest{DonationEmail: "giver@example.com", DonationAmount: 5_000_000}, false},
		{"below minimum", InitiateDonationRequest{DonationEmail: "giver@example.com", DonationAmount: 99}, true},
		{"zero amount", InitiateDonationRequest{DonationEmail: "giver@example.com", DonationAmount: 0}, true},
		{"missing email", InitiateDonationRequest{DonationAmount: 500}, true},
		{"bad email", InitiateDonationRequest{DonationEmail: "nope", DonationAmount: 500}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(&tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
