// file: internals/features/events/controller/event_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	dto "churchheroes_backend/internals/features/events/dto"
	model "churchheroes_backend/internals/features/events/model"
	helper "churchheroes_backend/internals/helpers"
)

const entityEvents = "events"

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     cache.Cacher
}

func NewEventController(db *gorm.DB, cc cache.Cacher) *EventController {
	return &EventController{
		DB:        db,
		Validator: validator.New(),
		Cache:     cc,
	}
}

/* ==============================
   PUBLIC
============================== */

// ListPublic returns upcoming events ascending by date. ?all=1 lifts the
// future-only filter (past events remain publicly visible on the archive).
func (ctl *EventController) ListPublic(c *fiber.Ctx) error {
	return ctl.listPublic(c, strings.TrimSpace(c.Query("all")) != "")
}

// ListPublicAll is the archive listing: no date filter.
func (ctl *EventController) ListPublicAll(c *fiber.Ctx) error {
	return ctl.listPublic(c, true)
}

func (ctl *EventController) listPublic(c *fiber.Ctx, all bool) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "asc", helper.PublicOpts)

	key := cache.ListKey(entityEvents, "public", fmt.Sprintf("all=%t", all),
		fmt.Sprintf("page=%d:per=%d:ord=%s", p.Page, p.PerPage, p.SortOrder))
	if raw, err := ctl.Cache.Get(ctx, key); err == nil {
		return helper.Success(c, "Events fetched", json.RawMessage(raw))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.EventModel{})
	if !all {
		today := time.Now().Truncate(24 * time.Hour)
		q = q.Where("event_date >= ? OR event_end_date >= ?", today, today)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var events []model.EventModel
	if err := q.Order("event_date " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	payload := fiber.Map{"events": events, "pagination": helper.BuildPageMeta(total, p)}
	if buf, err := sonic.Marshal(payload); err == nil {
		_ = ctl.Cache.Set(ctx, key, buf, 0)
	}
	return helper.Success(c, "Events fetched", payload)
}

/* ==============================
   ADMIN
============================== */

func (ctl *EventController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := helper.ParsePage(c, "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(ctx).Model(&model.EventModel{})
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("event_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var events []model.EventModel
	if err := q.Order("event_date " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.Success(c, "Events fetched", fiber.Map{
		"events":     events,
		"pagination": helper.BuildPageMeta(total, p),
	})
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entityEvents)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", m)
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	req.ApplyTo(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entityEvents)
	return helper.Success(c, "Event updated", m)
}

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("event_id = ?", id).Delete(&model.EventModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entityEvents)
	return helper.Success(c, "Event deleted", fiber.Map{"event_id": id})
}
