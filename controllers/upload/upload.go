package uploadController

import (
	"io"

	"clubhub/middleware"
	"clubhub/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadImage accepts a multipart file and returns it re-encoded as an inline
// data URI. No blob storage is involved; the caller stores the URI on the
// record that references the image.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Missing file upload!")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded.", fiber.Map{
		"url": utils.EncodeImageDataURI(fileHeader.Filename, content),
	})
}
