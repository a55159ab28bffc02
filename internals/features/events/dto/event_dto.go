// file: internals/features/events/dto/event_dto.go
package dto

import (
	"time"

	model "churchheroes_backend/internals/features/events/model"
)

/* ==============================
   CREATE (POST /api/admin/events)
============================== */

type CreateEventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,max=200"`
	EventDescription string     `json:"event_description" validate:"required"`
	EventDate        time.Time  `json:"event_date" validate:"required"`
	EventEndDate     *time.Time `json:"event_end_date" validate:"omitempty"`
	EventLocation    *string    `json:"event_location" validate:"omitempty,max=255"`
	EventCategory    *string    `json:"event_category" validate:"omitempty,max=80"`
	EventImageURL    *string    `json:"event_image_url" validate:"omitempty,url"`
	EventIsFeatured  *bool      `json:"event_is_featured" validate:"omitempty"`
}

func (r *CreateEventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventDate:        r.EventDate,
		EventEndDate:     r.EventEndDate,
		EventLocation:    r.EventLocation,
		EventCategory:    r.EventCategory,
		EventImageURL:    r.EventImageURL,
		EventIsFeatured:  r.EventIsFeatured != nil && *r.EventIsFeatured,
	}
}

/* ==============================
   UPDATE (PUT /api/admin/events/:id)
   Pointer fields: only present keys touch the record.
============================== */

type UpdateEventRequest struct {
	EventTitle       *string    `json:"event_title" validate:"omitempty,max=200"`
	EventDescription *string    `json:"event_description" validate:"omitempty"`
	EventDate        *time.Time `json:"event_date" validate:"omitempty"`
	EventEndDate     *time.Time `json:"event_end_date" validate:"omitempty"`
	EventLocation    *string    `json:"event_location" validate:"omitempty,max=255"`
	EventCategory    *string    `json:"event_category" validate:"omitempty,max=80"`
	EventImageURL    *string    `json:"event_image_url" validate:"omitempty,url"`
	EventIsFeatured  *bool      `json:"event_is_featured" validate:"omitempty"`
}

func (r *UpdateEventRequest) ApplyTo(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventDate != nil {
		m.EventDate = *r.EventDate
	}
	if r.EventEndDate != nil {
		m.EventEndDate = r.EventEndDate
	}
	if r.EventLocation != nil {
		m.EventLocation = r.EventLocation
	}
	if r.EventCategory != nil {
		m.EventCategory = r.EventCategory
	}
	if r.EventImageURL != nil {
		m.EventImageURL = r.EventImageURL
	}
	if r.EventIsFeatured != nil {
		m.EventIsFeatured = *r.EventIsFeatured
	}
}
