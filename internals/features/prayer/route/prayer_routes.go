package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	prayerCtl "churchheroes_backend/internals/features/prayer/controller"
	"churchheroes_backend/internals/middlewares"
)

func PrayerPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := prayerCtl.NewPrayerRequestController(db)
	r.Post("/prayer-requests", middlewares.PublicFormRateLimiter(), ctl.CreatePublic)
}

func PrayerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := prayerCtl.NewPrayerRequestController(db)

	grp := r.Group("/prayers")
	grp.Get("/list", ctl.List)
	grp.Patch("/:id/read", ctl.MarkRead)
}
