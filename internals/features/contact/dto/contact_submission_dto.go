// file: internals/features/contact/dto/contact_submission_dto.go
package dto

import (
	model "churchheroes_backend/internals/features/contact/model"
)

type CreateContactSubmissionRequest struct {
	ContactSubmissionName    string  `json:"contact_submission_name" validate:"required,max=120"`
	ContactSubmissionEmail   string  `json:"contact_submission_email" validate:"required,email,max=255"`
	ContactSubmissionPhone   *string `json:"contact_submission_phone" validate:"omitempty,max=40"`
	ContactSubmissionSubject string  `json:"contact_submission_subject" validate:"required,max=200"`
	ContactSubmissionMessage string  `json:"contact_submission_message" validate:"required"`
}

func (r *CreateContactSubmissionRequest) ToModel() *model.ContactSubmissionModel {
	return &model.ContactSubmissionModel{
		ContactSubmissionName:    r.ContactSubmissionName,
		ContactSubmissionEmail:   r.ContactSubmissionEmail,
		ContactSubmissionPhone:   r.ContactSubmissionPhone,
		ContactSubmissionSubject: r.ContactSubmissionSubject,
		ContactSubmissionMessage: r.ContactSubmissionMessage,
	}
}
