// file: internals/features/contact/model/contact_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmissionModel rows are created by the public form and only ever
// marked read afterwards; there is no public delete path.
type ContactSubmissionModel struct {
	ContactSubmissionID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contact_submission_id" json:"contact_submission_id"`
	ContactSubmissionName    string    `gorm:"type:varchar(120);not null;column:contact_submission_name" json:"contact_submission_name"`
	ContactSubmissionEmail   string    `gorm:"type:varchar(255);not null;column:contact_submission_email" json:"contact_submission_email"`
	ContactSubmissionPhone   *string   `gorm:"type:varchar(40);column:contact_submission_phone" json:"contact_submission_phone,omitempty"`
	ContactSubmissionSubject string    `gorm:"type:varchar(200);not null;column:contact_submission_subject" json:"contact_submission_subject"`
	ContactSubmissionMessage string    `gorm:"type:text;not null;column:contact_submission_message" json:"contact_submission_message"`
	ContactSubmissionIsRead  bool      `gorm:"not null;default:false;column:contact_submission_is_read;index:idx_contact_submissions_read" json:"contact_submission_is_read"`

	ContactSubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:contact_submission_created_at" json:"contact_submission_created_at"`
	ContactSubmissionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:contact_submission_updated_at" json:"contact_submission_updated_at"`
}

func (ContactSubmissionModel) TableName() string { return "contact_submissions" }
