package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	settingCtl "churchheroes_backend/internals/features/settings/controller"
)

func SettingPublicRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := settingCtl.NewSiteSettingController(db, cc)
	r.Get("/settings", ctl.ListPublic)
	r.Get("/settings/:key", ctl.GetByKey)
}

func SettingAdminRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := settingCtl.NewSiteSettingController(db, cc)

	grp := r.Group("/settings")
	grp.Get("/list", ctl.List)
	grp.Put("/:key", ctl.Upsert)
}
