// file: internals/features/uploads/controller/upload_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "churchheroes_backend/internals/helpers"
	"churchheroes_backend/internals/helpers/oss"
)

type UploadController struct {
	Storage *oss.Service
}

func NewUploadController(storage *oss.Service) *UploadController {
	return &UploadController{Storage: storage}
}

// Upload stores a multipart file under the requested media directory and
// returns its public URL. Files over the size cap and unknown directories
// are rejected before anything touches the bucket.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	if ctl.Storage == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "File storage is not configured")
	}

	dir := c.Params("bucket")
	if err := oss.ValidateDir(dir); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown upload directory")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing file")
	}
	if err := oss.ValidateSize(fileHeader.Size); err != nil {
		if errors.Is(err, oss.ErrFileTooLarge) {
			return helper.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds the 50MB limit")
		}
		return helper.Error(c, fiber.StatusBadRequest, "Invalid file")
	}

	url, err := ctl.Storage.UploadFromFormFile(c.UserContext(), dir, fileHeader)
	if err != nil {
		log.Println("[ERROR] upload failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Upload failed")
	}

	return helper.Success(c, "File uploaded", fiber.Map{"url": url})
}
