// file: internals/features/sermons/dto/sermon_dto.go
package dto

import (
	"time"

	model "churchheroes_backend/internals/features/sermons/model"
)

type CreateSermonRequest struct {
	SermonTitle        string     `json:"sermon_title" validate:"required,max=200"`
	SermonSpeaker      string     `json:"sermon_speaker" validate:"required,max=120"`
	SermonDescription  *string    `json:"sermon_description" validate:"omitempty"`
	SermonDate         time.Time  `json:"sermon_date" validate:"required"`
	SermonVideoURL     *string    `json:"sermon_video_url" validate:"omitempty,url"`
	SermonAudioURL     *string    `json:"sermon_audio_url" validate:"omitempty,url"`
	SermonThumbnailURL *string    `json:"sermon_thumbnail_url" validate:"omitempty,url"`
	SermonSeries       *string    `json:"sermon_series" validate:"omitempty,max=120"`
	SermonDuration     *string    `json:"sermon_duration" validate:"omitempty,max=20"`
	SermonIsFeatured   *bool      `json:"sermon_is_featured" validate:"omitempty"`
}

func (r *CreateSermonRequest) ToModel() *model.SermonModel {
	return &model.SermonModel{
		SermonTitle:        r.SermonTitle,
		SermonSpeaker:      r.SermonSpeaker,
		SermonDescription:  r.SermonDescription,
		SermonDate:         r.SermonDate,
		SermonVideoURL:     r.SermonVideoURL,
		SermonAudioURL:     r.SermonAudioURL,
		SermonThumbnailURL: r.SermonThumbnailURL,
		SermonSeries:       r.SermonSeries,
		SermonDuration:     r.SermonDuration,
		SermonIsFeatured:   r.SermonIsFeatured != nil && *r.SermonIsFeatured,
	}
}

type UpdateSermonRequest struct {
	SermonTitle        *string    `json:"sermon_title" validate:"omitempty,max=200"`
	SermonSpeaker      *string    `json:"sermon_speaker" validate:"omitempty,max=120"`
	SermonDescription  *string    `json:"sermon_description" validate:"omitempty"`
	SermonDate         *time.Time `json:"sermon_date" validate:"omitempty"`
	SermonVideoURL     *string    `json:"sermon_video_url" validate:"omitempty,url"`
	SermonAudioURL     *string    `json:"sermon_audio_url" validate:"omitempty,url"`
	SermonThumbnailURL *string    `json:"sermon_thumbnail_url" validate:"omitempty,url"`
	SermonSeries       *string    `json:"sermon_series" validate:"omitempty,max=120"`
	SermonDuration     *string    `json:"sermon_duration" validate:"omitempty,max=20"`
	SermonIsFeatured   *bool      `json:"sermon_is_featured" validate:"omitempty"`
}

func (r *UpdateSermonRequest) ApplyTo(m *model.SermonModel) {
	if r.SermonTitle != nil {
		m.SermonTitle = *r.SermonTitle
	}
	if r.SermonSpeaker != nil {
		m.SermonSpeaker = *r.SermonSpeaker
	}
	if r.SermonDescription != nil {
		m.SermonDescription = r.SermonDescription
	}
	if r.SermonDate != nil {
		m.SermonDate = *r.SermonDate
	}
	if r.SermonVideoURL != nil {
		m.SermonVideoURL = r.SermonVideoURL
	}
	if r.SermonAudioURL != nil {
		m.SermonAudioURL = r.SermonAudioURL
	}
	if r.SermonThumbnailURL != nil {
		m.SermonThumbnailURL = r.SermonThumbnailURL
	}
	if r.SermonSeries != nil {
		m.SermonSeries = r.SermonSeries
	}
	if r.SermonDuration != nil {
		m.SermonDuration = r.SermonDuration
	}
	if r.SermonIsFeatured != nil {
		m.SermonIsFeatured = *r.SermonIsFeatured
	}
}
