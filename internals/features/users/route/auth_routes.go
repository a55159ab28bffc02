package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "churchheroes_backend/internals/features/users/controller"
	"churchheroes_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
