package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	eventCtl "churchheroes_backend/internals/features/events/controller"
)

// Public routes: mounted under /api/public (no auth)
func EventPublicRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := eventCtl.NewEventController(db, cc)
	r.Get("/events", ctl.ListPublic)
	r.Get("/events/all", ctl.ListPublicAll)
}

// Admin routes: mounted under /api/admin (auth + admin role already applied)
func EventAdminRoutes(r fiber.Router, db *gorm.DB, cc cache.Cacher) {
	ctl := eventCtl.NewEventController(db, cc)

	grp := r.Group("/events")
	grp.Get("/list", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
