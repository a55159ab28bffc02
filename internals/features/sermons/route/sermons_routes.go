package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	sermonCtl "churchheroes_backend/internals/features/sermons/controller"
)

func SermonPublicRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := sermonCtl.NewSermonController(db, cc)
	r.Get("/sermons", ctl.ListPublic)
}

func SermonAdminRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := sermonCtl.NewSermonController(db, cc)

	grp := r.Group("/sermons")
	grp.Get("/list", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
