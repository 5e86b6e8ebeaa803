package handler

import (
	"errors"
	"io"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	service service.UploadService
}

func NewUploadHandler(s service.UploadService) *UploadHandler {
	return &UploadHandler{service: s}
}

// Upload handles POST /upload with a multipart "image" field.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file or upload error"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file or upload error"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file or upload error"})
	}

	path, err := h.service.Save(data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"path": path})
}

// MethodNotAllowed responds with the JSON 405 body the storefront expects.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
}
