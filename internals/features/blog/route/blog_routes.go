package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	blogCtl "churchheroes_backend/internals/features/blog/controller"
)

func BlogPublicRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := blogCtl.NewBlogPostController(db, cc)
	r.Get("/blog", ctl.ListPublic)
	r.Get("/blog/:slug", ctl.GetBySlug)
}

func BlogAdminRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := blogCtl.NewBlogPostController(db, cc)

	grp := r.Group("/blog")
	grp.Get("/list", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
