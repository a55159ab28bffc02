// file: internals/features/sermons/model/sermon_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SermonModel struct {
	SermonID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sermon_id" json:"sermon_id"`
	SermonTitle        string     `gorm:"type:varchar(200);not null;column:sermon_title" json:"sermon_title"`
	SermonSpeaker      string     `gorm:"type:varchar(120);not null;column:sermon_speaker" json:"sermon_speaker"`
	SermonDescription  *string    `gorm:"type:text;column:sermon_description" json:"sermon_description,omitempty"`
	SermonDate         time.Time  `gorm:"type:timestamptz;not null;column:sermon_date;index:idx_sermons_date" json:"sermon_date"`
	SermonVideoURL     *string    `gorm:"type:text;column:sermon_video_url" json:"sermon_video_url,omitempty"`
	SermonAudioURL     *string    `gorm:"type:text;column:sermon_audio_url" json:"sermon_audio_url,omitempty"`
	SermonThumbnailURL *string    `gorm:"type:text;column:sermon_thumbnail_url" json:"sermon_thumbnail_url,omitempty"`
	SermonSeries       *string    `gorm:"type:varchar(120);column:sermon_series;index:idx_sermons_series" json:"sermon_series,omitempty"`
	SermonDuration     *string    `gorm:"type:varchar(20);column:sermon_duration" json:"sermon_duration,omitempty"`
	SermonIsFeatured   bool       `gorm:"not null;default:false;column:sermon_is_featured" json:"sermon_is_featured"`

	SermonCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:sermon_created_at" json:"sermon_created_at"`
	SermonUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:sermon_updated_at" json:"sermon_updated_at"`
	SermonDeletedAt gorm.DeletedAt `gorm:"column:sermon_deleted_at;index" json:"sermon_deleted_at,omitempty"`
}

func (SermonModel) TableName() string { return "sermons" }
