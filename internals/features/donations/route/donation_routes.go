package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationCtl "churchheroes_backend/internals/features/donations/controller"
	"churchheroes_backend/internals/middlewares"
)

func DonationPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db)
	r.Post("/donations", middlewares.PublicFormRateLimiter(), ctl.InitiatePublic)
	r.Get("/donations/verify", ctl.VerifyPublic)
}

// DonationWebhookRoutes mounts on the app root: gateways push without auth,
// verified by signature instead.
func DonationWebhookRoutes(app fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db)
	app.Post("/api/donations/notification", ctl.Notification)
}

func DonationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db)

	grp := r.Group("/donations")
	grp.Get("/list", ctl.List)
}
