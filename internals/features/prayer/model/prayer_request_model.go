// file: internals/features/prayer/model/prayer_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PrayerRequestModel rows come in anonymously unless the sender chooses to
// leave a name/email. is_private keeps a request off any shared prayer list;
// it is still visible to admins.
type PrayerRequestModel struct {
	PrayerRequestID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:prayer_request_id" json:"prayer_request_id"`
	PrayerRequestName      *string   `gorm:"type:varchar(120);column:prayer_request_name" json:"prayer_request_name,omitempty"`
	PrayerRequestEmail     *string   `gorm:"type:varchar(255);column:prayer_request_email" json:"prayer_request_email,omitempty"`
	PrayerRequestText      string    `gorm:"type:text;not null;column:prayer_request_text" json:"prayer_request_text"`
	PrayerRequestIsPrivate bool      `gorm:"not null;default:false;column:prayer_request_is_private" json:"prayer_request_is_private"`
	PrayerRequestIsRead    bool      `gorm:"not null;default:false;column:prayer_request_is_read;index:idx_prayer_requests_read" json:"prayer_request_is_read"`

	PrayerRequestCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:prayer_request_created_at" json:"prayer_request_created_at"`
	PrayerRequestUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:prayer_request_updated_at" json:"prayer_request_updated_at"`
}

func (PrayerRequestModel) TableName() string { return "prayer_requests" }
