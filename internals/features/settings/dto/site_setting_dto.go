// file: internals/features/settings/dto/site_setting_dto.go
package dto

type UpsertSiteSettingRequest struct {
	SiteSettingValue string `json:"site_setting_value" validate:"required"`
}
