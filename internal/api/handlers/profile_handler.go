package handlers

import (
	"context"
	"errors"
	"io"

	"telephysio/internal/dto"
	"telephysio/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UploadPhoto(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, contentType string) (*dto.UserResponse, error)
}

type ProfileHandler struct {
	profileService ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		return h.fail(c, err, "Failed to load profile")
	}
	return c.JSON(dto.ProfileResponse{User: *user})
}

// UpdateProfile godoc
// @Summary Update bio, picture or username
// @Description A profilePicture given as a base64 data URL is uploaded to storage.
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/profile [patch]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if ok, err := parseBody(c, &req, "Invalid request body"); !ok {
		return err
	}

	user, err := h.profileService.Update(c.Context(), userID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to update profile")
	}
	return c.JSON(dto.ProfileResponse{User: *user})
}

// UploadPhoto godoc
// @Summary Upload a profile photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Image file"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /api/profile/photo [post]
func (h *ProfileHandler) UploadPhoto(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	user, err := h.profileService.UploadPhoto(c.Context(), userID, src, file.Size, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return h.fail(c, err, "Failed to upload photo")
	}
	return c.JSON(dto.ProfileResponse{User: *user})
}

func (h *ProfileHandler) fail(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	case errors.Is(err, service.ErrInvalidImage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported or malformed image",
		})
	case errors.Is(err, service.ErrPhotoTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "Photo is too large",
		})
	}
	h.logger.Error(message, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
