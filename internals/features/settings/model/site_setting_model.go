// file: internals/features/settings/model/site_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettingModel is a key/value pair the admin panel can tweak without a
// deploy (hero video URL, service times, banner text).
type SiteSettingModel struct {
	SiteSettingID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:site_setting_id" json:"site_setting_id"`
	SiteSettingKey   string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_site_settings_key;column:site_setting_key" json:"site_setting_key"`
	SiteSettingValue string    `gorm:"type:text;not null;column:site_setting_value" json:"site_setting_value"`

	SiteSettingCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:site_setting_created_at" json:"site_setting_created_at"`
	SiteSettingUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:site_setting_updated_at" json:"site_setting_updated_at"`
}

func (SiteSettingModel) TableName() string { return "site_settings" }
