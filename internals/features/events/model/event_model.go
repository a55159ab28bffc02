// file: internals/features/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`
	EventTitle       string     `gorm:"type:varchar(200);not null;column:event_title" json:"event_title"`
	EventDescription string     `gorm:"type:text;not null;column:event_description" json:"event_description"`
	EventDate        time.Time  `gorm:"type:timestamptz;not null;column:event_date;index:idx_events_date" json:"event_date"`
	EventEndDate     *time.Time `gorm:"type:timestamptz;column:event_end_date" json:"event_end_date,omitempty"`
	EventLocation    *string    `gorm:"type:varchar(255);column:event_location" json:"event_location,omitempty"`
	EventCategory    *string    `gorm:"type:varchar(80);column:event_category" json:"event_category,omitempty"`
	EventImageURL    *string    `gorm:"type:text;column:event_image_url" json:"event_image_url,omitempty"`
	EventIsFeatured  bool       `gorm:"not null;default:false;column:event_is_featured" json:"event_is_featured"`

	EventCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
