// file: internals/features/donations/dto/donation_dto.go
package dto

// InitiateDonationRequest carries the amount in major currency units. The
// minimum gift is 100; anything lower is rejected before the gateway is
// contacted.
type InitiateDonationRequest struct {
	DonationEmail    string                 `json:"donation_email" validate:"required,email,max=255"`
	DonationAmount   int64                  `json:"donation_amount" validate:"required,min=100"`
	DonationMetadata map[string]interface{} `json:"donation_metadata" validate:"omitempty"`
}

type InitiateDonationResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}
