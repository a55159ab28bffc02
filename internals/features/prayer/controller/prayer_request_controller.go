// file: internals/features/prayer/controller/prayer_request_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "churchheroes_backend/internals/features/prayer/dto"
	model "churchheroes_backend/internals/features/prayer/model"
	helper "churchheroes_backend/internals/helpers"
)

type PrayerRequestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPrayerRequestController(db *gorm.DB) *PrayerRequestController {
	return &PrayerRequestController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   PUBLIC
============================== */

func (ctl *PrayerRequestController) CreatePublic(c *fiber.Ctx) error {
	var req dto.CreatePrayerRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit prayer request")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Prayer request received", fiber.Map{
		"prayer_request_id": m.PrayerRequestID,
	})
}

/* ==============================
   ADMIN
============================== */

func (ctl *PrayerRequestController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(ctx).Model(&model.PrayerRequestModel{})
	if unread := strings.TrimSpace(c.Query("unread")); unread != "" {
		q = q.Where("prayer_request_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch prayer requests")
	}

	var reqs []model.PrayerRequestModel
	if err := q.Order("prayer_request_created_at " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&reqs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch prayer requests")
	}

	return helper.Success(c, "Prayer requests fetched", fiber.Map{
		"prayer_requests": reqs,
		"pagination":      helper.BuildPageMeta(total, p),
	})
}

// MarkRead is monotonic: true only, same as the contact inbox.
func (ctl *PrayerRequestController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	var m model.PrayerRequestModel
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.First(&m, "prayer_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Prayer request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch prayer request")
	}

	if !m.PrayerRequestIsRead {
		if err := db.Model(&m).
			Update("prayer_request_is_read", true).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update prayer request")
		}
		m.PrayerRequestIsRead = true
	}

	return helper.Success(c, "Prayer request marked as read", m)
}
