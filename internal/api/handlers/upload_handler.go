package handlers

import (
	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

const MaxUploadSize = 10 << 20

var uploadTypes = append(append([]string{}, storage.AllowImage...), storage.AllowDocument...)

type (
	UploadHandler interface {
		Upload(c *fiber.Ctx) error
	}

	uploadHandler struct {
		s3 storage.AwsS3
	}
)

// NewUploadHandler accepts a nil store, in which case uploads are rejected.
func NewUploadHandler(s3 storage.AwsS3) UploadHandler {
	return &uploadHandler{
		s3: s3,
	}
}

func (h *uploadHandler) Upload(c *fiber.Ctx) error {
	if h.s3 == nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpload, domain.ErrStorageUnavailable)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedValidation, err)
	}
	if file.Size > MaxUploadSize {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpload, domain.ErrFileTooLarge)
	}

	objectKey, err := h.s3.UploadFile("", file, "uploads", uploadTypes...)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpload, err)
	}

	return presenters.SuccessResponse(c, domain.UploadResponse{
		URL: h.s3.GetPublicLinkKey(objectKey),
	}, fiber.StatusOK, domain.MessageSuccessUpload)
}
