// file: internals/features/settings/controller/site_setting_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"churchheroes_backend/internals/cache"
	dto "churchheroes_backend/internals/features/settings/dto"
	model "churchheroes_backend/internals/features/settings/model"
	helper "churchheroes_backend/internals/helpers"
)

const entitySettings = "site_settings"

type SiteSettingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     cache.Cacher
}

func NewSiteSettingController(db *gorm.DB, cc cache.Cacher) *SiteSettingController {
	return &SiteSettingController{
		DB:        db,
		Validator: validator.New(),
		Cache:     cc,
	}
}

/* ==============================
   PUBLIC
============================== */

// ListPublic returns every setting as one map; the home page reads it once.
func (ctl *SiteSettingController) ListPublic(c *fiber.Ctx) error {
	ctx := c.UserContext()

	key := cache.ListKey(entitySettings, "public", "all")
	if raw, err := ctl.Cache.Get(ctx, key); err == nil {
		return helper.Success(c, "Settings fetched", json.RawMessage(raw))
	}

	var settings []model.SiteSettingModel
	if err := ctl.DB.WithContext(ctx).
		Order("site_setting_key ASC").
		Find(&settings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}

	kv := make(map[string]string, len(settings))
	for _, s := range settings {
		kv[s.SiteSettingKey] = s.SiteSettingValue
	}

	payload := fiber.Map{"settings": kv}
	if buf, err := sonic.Marshal(payload); err == nil {
		_ = ctl.Cache.Set(ctx, key, buf, 0)
	}
	return helper.Success(c, "Settings fetched", payload)
}

func (ctl *SiteSettingController) GetByKey(c *fiber.Ctx) error {
	ctx := c.UserContext()
	settingKey := strings.TrimSpace(c.Params("key"))
	if settingKey == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing setting key")
	}

	cacheKey := cache.ListKey(entitySettings, "key", settingKey)
	if raw, err := ctl.Cache.Get(ctx, cacheKey); err == nil {
		return helper.Success(c, "Setting fetched", json.RawMessage(raw))
	}

	var s model.SiteSettingModel
	if err := ctl.DB.WithContext(ctx).
		First(&s, "site_setting_key = ?", settingKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Setting not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch setting")
	}

	if buf, err := sonic.Marshal(s); err == nil {
		_ = ctl.Cache.Set(ctx, cacheKey, buf, 0)
	}
	return helper.Success(c, "Setting fetched", s)
}

/* ==============================
   ADMIN
============================== */

func (ctl *SiteSettingController) List(c *fiber.Ctx) error {
	var settings []model.SiteSettingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("site_setting_key ASC").
		Find(&settings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}
	return helper.Success(c, "Settings fetched", fiber.Map{"settings": settings})
}

// Upsert writes by key. Two admin sessions racing on the same key are
// last-write-wins; the later invalidation is the one readers see.
func (ctl *SiteSettingController) Upsert(c *fiber.Ctx) error {
	settingKey := strings.TrimSpace(c.Params("key"))
	if settingKey == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing setting key")
	}

	var req dto.UpsertSiteSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.SiteSettingModel{
		SiteSettingKey:   settingKey,
		SiteSettingValue: req.SiteSettingValue,
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"site_setting_value", "site_setting_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save setting")
	}

	cache.InvalidateEntity(c.UserContext(), ctl.Cache, entitySettings)
	return helper.Success(c, "Setting saved", m)
}
