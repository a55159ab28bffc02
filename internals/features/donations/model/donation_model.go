// file: internals/features/donations/model/donation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationPaid      DonationStatus = "paid"
	DonationFailed    DonationStatus = "failed"
	DonationAbandoned DonationStatus = "abandoned"
)

// DonationModel is written at initiation time with status pending. Only a
// server-side confirmation from the gateway (webhook or verify call) moves
// it to paid; the client redirect never does.
type DonationModel struct {
	DonationID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:donation_id" json:"donation_id"`
	DonationReference   string         `gorm:"type:varchar(64);not null;uniqueIndex:uq_donations_reference;column:donation_reference" json:"donation_reference"`
	DonationEmail       string         `gorm:"type:varchar(255);not null;column:donation_email" json:"donation_email"`
	DonationAmount      int64          `gorm:"not null;column:donation_amount" json:"donation_amount"`
	DonationAmountMinor int64          `gorm:"not null;column:donation_amount_minor" json:"donation_amount_minor"`
	DonationCurrency    string         `gorm:"type:varchar(8);not null;column:donation_currency" json:"donation_currency"`
	DonationStatus      DonationStatus `gorm:"type:varchar(16);not null;default:'pending';column:donation_status;index:idx_donations_status" json:"donation_status"`
	DonationGateway     string         `gorm:"type:varchar(32);not null;column:donation_gateway" json:"donation_gateway"`
	DonationMetadata    datatypes.JSON `gorm:"type:jsonb;column:donation_metadata" json:"donation_metadata,omitempty"`
	DonationPaidAt      *time.Time     `gorm:"type:timestamptz;column:donation_paid_at" json:"donation_paid_at,omitempty"`

	DonationCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:donation_created_at" json:"donation_created_at"`
	DonationUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:donation_updated_at" json:"donation_updated_at"`
}

func (DonationModel) TableName() string { return "donations" }
