package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"telephysio/internal/dto"
	"telephysio/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExerciseService interface {
	Catalogue() []string
	Start(ctx context.Context, userID, name string) (*dto.SessionResponse, error)
	PostFrame(ctx context.Context, userID, id string, req *dto.FrameRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, userID, id string) (*dto.SessionResponse, error)
	Report(ctx context.Context, userID, id string, w io.Writer) error
}

type ExerciseHandler struct {
	exerciseService ExerciseService
	logger          *zap.Logger
}

func NewExerciseHandler(exerciseService ExerciseService, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logger:          logger,
	}
}

// Catalogue godoc
// @Summary Exercises a session can be started for
// @Tags exercise
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string][]string
// @Router /api/v1/exercise/catalogue [get]
func (h *ExerciseHandler) Catalogue(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"exercises": h.exerciseService.Catalogue()})
}

// StartSession godoc
// @Summary Start tracking an exercise
// @Tags exercise
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.StartSessionRequest true "Exercise"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/exercise/sessions [post]
func (h *ExerciseHandler) StartSession(c *fiber.Ctx) error {
	userID, ok := getUserIDString(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.StartSessionRequest
	if ok, err := parseBody(c, &req, "Exercise is required"); !ok {
		return err
	}

	session, err := h.exerciseService.Start(c.Context(), userID, req.Exercise)
	if err != nil {
		return h.fail(c, err, "Failed to start session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// PostFrame godoc
// @Summary Submit one frame of landmarks
// @Tags exercise
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Session ID"
// @Param request body dto.FrameRequest true "Landmarks"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/exercise/sessions/{id}/frames [post]
func (h *ExerciseHandler) PostFrame(c *fiber.Ctx) error {
	userID, ok := getUserIDString(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.FrameRequest
	if ok, err := parseBody(c, &req, "Invalid frame"); !ok {
		return err
	}

	session, err := h.exerciseService.PostFrame(c.Context(), userID, c.Params("id"), &req)
	if err != nil {
		return h.fail(c, err, "Failed to process frame")
	}
	return c.JSON(session)
}

// GetSession godoc
// @Summary Current totals of a session
// @Tags exercise
// @Produce json
// @Security Bearer
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/exercise/sessions/{id} [get]
func (h *ExerciseHandler) GetSession(c *fiber.Ctx) error {
	userID, ok := getUserIDString(c)
	if !ok {
		return unauthorized(c)
	}

	session, err := h.exerciseService.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Failed to load session")
	}
	return c.JSON(session)
}

// Report godoc
// @Summary Download the session samples as CSV
// @Tags exercise
// @Produce text/csv
// @Security Bearer
// @Param id path string true "Session ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /api/v1/exercise/sessions/{id}/report [get]
func (h *ExerciseHandler) Report(c *fiber.Ctx) error {
	userID, ok := getUserIDString(c)
	if !ok {
		return unauthorized(c)
	}

	id := c.Params("id")
	var buf bytes.Buffer
	if err := h.exerciseService.Report(c.Context(), userID, id, &buf); err != nil {
		return h.fail(c, err, "Failed to build report")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="exercise-%s.csv"`, id))
	return c.Send(buf.Bytes())
}

func (h *ExerciseHandler) fail(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrUnknownExercise):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown exercise",
		})
	case errors.Is(err, service.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	h.logger.Error(message, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
