package route

import (
	"github.com/gofiber/fiber/v2"

	uploadCtl "churchheroes_backend/internals/features/uploads/controller"
	"churchheroes_backend/internals/helpers/oss"
)

func UploadAdminRoutes(r fiber.Router, storage *oss.Service) {
	ctl := uploadCtl.NewUploadController(storage)

	grp := r.Group("/uploads")
	grp.Post("/:bucket", ctl.Upload)
}
