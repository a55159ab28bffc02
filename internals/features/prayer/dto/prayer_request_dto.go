// file: internals/features/prayer/dto/prayer_request_dto.go
package dto

import (
	model "churchheroes_backend/internals/features/prayer/model"
)

// The 10–2000 bound is checked here, before any database round-trip.
type CreatePrayerRequestRequest struct {
	PrayerRequestName      *string `json:"prayer_request_name" validate:"omitempty,max=120"`
	PrayerRequestEmail     *string `json:"prayer_request_email" validate:"omitempty,email,max=255"`
	PrayerRequestText      string  `json:"prayer_request_text" validate:"required,min=10,max=2000"`
	PrayerRequestIsPrivate *bool   `json:"prayer_request_is_private" validate:"omitempty"`
}

func (r *CreatePrayerRequestRequest) ToModel() *model.PrayerRequestModel {
	return &model.PrayerRequestModel{
		PrayerRequestName:      r.PrayerRequestName,
		PrayerRequestEmail:     r.PrayerRequestEmail,
		PrayerRequestText:      r.PrayerRequestText,
		PrayerRequestIsPrivate: r.PrayerRequestIsPrivate != nil && *r.PrayerRequestIsPrivate,
	}
}
