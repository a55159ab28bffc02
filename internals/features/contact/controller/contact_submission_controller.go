// file: internals/features/contact/controller/contact_submission_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "churchheroes_backend/internals/features/contact/dto"
	model "churchheroes_backend/internals/features/contact/model"
	helper "churchheroes_backend/internals/helpers"
)

type ContactSubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewContactSubmissionController(db *gorm.DB) *ContactSubmissionController {
	return &ContactSubmissionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   PUBLIC
============================== */

func (ctl *ContactSubmissionController) CreatePublic(c *fiber.Ctx) error {
	var req dto.CreateContactSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message sent", fiber.Map{
		"contact_submission_id": m.ContactSubmissionID,
	})
}

/* ==============================
   ADMIN
============================== */

// List is always fresh (no cache): the inbox backs the mark-read workflow.
func (ctl *ContactSubmissionController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(ctx).Model(&model.ContactSubmissionModel{})
	if unread := strings.TrimSpace(c.Query("unread")); unread != "" {
		q = q.Where("contact_submission_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	var subs []model.ContactSubmissionModel
	if err := q.Order("contact_submission_created_at " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.Success(c, "Submissions fetched", fiber.Map{
		"submissions": subs,
		"pagination":  helper.BuildPageMeta(total, p),
	})
}

// MarkRead only ever flips is_read to true. No route goes back to unread.
func (ctl *ContactSubmissionController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var m model.ContactSubmissionModel
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.First(&m, "contact_submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}

	if !m.ContactSubmissionIsRead {
		if err := db.Model(&m).
			Update("contact_submission_is_read", true).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update submission")
		}
		m.ContactSubmissionIsRead = true
	}

	return helper.Success(c, "Submission marked as read", m)
}
