// file: internals/features/sermons/controller/sermon_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	dto "churchheroes_backend/internals/features/sermons/dto"
	model "churchheroes_backend/internals/features/sermons/model"
	helper "churchheroes_backend/internals/helpers"
)

const entitySermons = "sermons"

type SermonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     cache.Cacher
}

func NewSermonController(db *gorm.DB, cc cache.Cacher) *SermonController {
	return &SermonController{
		DB:        db,
		Validator: validator.New(),
		Cache:     cc,
	}
}

/* ==============================
   PUBLIC
============================== */

// ListPublic returns sermons newest first, optionally filtered by series.
func (ctl *SermonController) ListPublic(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.PublicOpts)
	series := strings.TrimSpace(c.Query("series"))

	key := cache.ListKey(entitySermons, "public", "series="+series,
		fmt.Sprintf("page=%d:per=%d:ord=%s", p.Page, p.PerPage, p.SortOrder))
	if raw, err := ctl.Cache.Get(ctx, key); err == nil {
		return helper.Success(c, "Sermons fetched", json.RawMessage(raw))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.SermonModel{})
	if series != "" {
		q = q.Where("sermon_series = ?", series)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	var sermons []model.SermonModel
	if err := q.Order("sermon_date " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&sermons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	payload := fiber.Map{"sermons": sermons, "pagination": helper.BuildPageMeta(total, p)}
	if buf, err := sonic.Marshal(payload); err == nil {
		_ = ctl.Cache.Set(ctx, key, buf, 0)
	}
	return helper.Success(c, "Sermons fetched", payload)
}

/* ==============================
   ADMIN
============================== */

func (ctl *SermonController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(ctx).Model(&model.SermonModel{})
	if series := strings.TrimSpace(c.Query("series")); series != "" {
		q = q.Where("sermon_series = ?", series)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	var sermons []model.SermonModel
	if err := q.Order("sermon_date " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&sermons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	return helper.Success(c, "Sermons fetched", fiber.Map{
		"sermons":    sermons,
		"pagination": helper.BuildPageMeta(total, p),
	})
}

func (ctl *SermonController) Create(c *fiber.Ctx) error {
	var req dto.CreateSermonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create sermon")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entitySermons)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sermon created", m)
}

func (ctl *SermonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	var req dto.UpdateSermonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.SermonModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "sermon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sermon not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermon")
	}

	req.ApplyTo(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update sermon")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entitySermons)
	return helper.Success(c, "Sermon updated", m)
}

func (ctl *SermonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("sermon_id = ?", id).Delete(&model.SermonModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete sermon")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Sermon not found")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entitySermons)
	return helper.Success(c, "Sermon deleted", fiber.Map{"sermon_id": id})
}
