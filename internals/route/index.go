// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchheroes_backend/internals/cache"
	blogRoute "churchheroes_backend/internals/features/blog/route"
	contactRoute "churchheroes_backend/internals/features/contact/route"
	donationRoute "churchheroes_backend/internals/features/donations/route"
	eventRoute "churchheroes_backend/internals/features/events/route"
	prayerRoute "churchheroes_backend/internals/features/prayer/route"
	sermonRoute "churchheroes_backend/internals/features/sermons/route"
	settingRoute "churchheroes_backend/internals/features/settings/route"
	uploadRoute "churchheroes_backend/internals/features/uploads/route"
	userRoute "churchheroes_backend/internals/features/users/route"
	"churchheroes_backend/internals/helpers/oss"
	authMw "churchheroes_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three surfaces: /api/public (open reads and
// forms), /api/auth (login), /api/admin (JWT + admin role). The gateway
// webhook sits outside all of them.
func SetupRoutes(app *fiber.App, db *gorm.DB, cc cache.Cacher, storage *oss.Service) {
	api := app.Group("/api")

	/* ===== Public ===== */
	public := api.Group("/public")
	eventRoute.EventPublicRoutes(public, db, cc)
	sermonRoute.SermonPublicRoutes(public, db, cc)
	blogRoute.BlogPublicRoutes(public, db, cc)
	settingRoute.SettingPublicRoutes(public, db, cc)
	contactRoute.ContactPublicRoutes(public, db)
	prayerRoute.PrayerPublicRoutes(public, db)
	donationRoute.DonationPublicRoutes(public, db)

	/* ===== Auth ===== */
	userRoute.AuthRoutes(api, db)

	/* ===== Webhook (signature-verified, no JWT) ===== */
	donationRoute.DonationWebhookRoutes(app, db)

	/* ===== Admin ===== */
	admin := api.Group("/admin",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Admin access required", "admin"),
	)
	eventRoute.EventAdminRoutes(admin, db, cc)
	sermonRoute.SermonAdminRoutes(admin, db, cc)
	blogRoute.BlogAdminRoutes(admin, db, cc)
	settingRoute.SettingAdminRoutes(admin, db, cc)
	contactRoute.ContactAdminRoutes(admin, db)
	prayerRoute.PrayerAdminRoutes(admin, db)
	donationRoute.DonationAdminRoutes(admin, db)
	uploadRoute.UploadAdminRoutes(admin, storage)

	log.Println("✅ routes mounted")
}
