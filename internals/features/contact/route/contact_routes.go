package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactCtl "churchheroes_backend/internals/features/contact/controller"
	"churchheroes_backend/internals/middlewares"
)

func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := contactCtl.NewContactSubmissionController(db)
	r.Post("/contact", middlewares.PublicFormRateLimiter(), ctl.CreatePublic)
}

func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := contactCtl.NewContactSubmissionController(db)

	grp := r.Group("/contacts")
	grp.Get("/list", ctl.List)
	grp.Patch("/:id/read", ctl.MarkRead)
}
