package handlers

import (
	"context"

	"telephysio/internal/dto"
	"telephysio/internal/service"
	"telephysio/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BookingService interface {
	BookAppointment(ctx context.Context, req *dto.AppointmentRequest) error
	ListAppointments(ctx context.Context, email string, limit, offset int) ([]dto.AppointmentResponse, error)
	RequestCallback(ctx context.Context, req *dto.CallbackRequest) error
}

type BookingHandler struct {
	bookingService BookingService
	logger         *zap.Logger
}

func NewBookingHandler(bookingService BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// BookAppointment godoc
// @Summary Book an appointment
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.AppointmentRequest true "Appointment"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/appointment [post]
func (h *BookingHandler) BookAppointment(c *fiber.Ctx) error {
	var req dto.AppointmentRequest
	if ok, err := parseBody(c, &req, "No data provided"); !ok {
		return err
	}

	if err := h.bookingService.BookAppointment(c.Context(), &req); err != nil {
		if err == service.ErrEmptyRequest {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No data provided",
			})
		}
		h.logger.Error("Error saving appointment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save appointment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Appointment saved"})
}

// ListAppointments godoc
// @Summary Appointments booked with the caller's email
// @Tags booking
// @Produce json
// @Security Bearer
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/appointments [get]
func (h *BookingHandler) ListAppointments(c *fiber.Ctx) error {
	email, ok := c.Locals(middleware.LocalEmail).(string)
	if !ok || email == "" {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	appointments, err := h.bookingService.ListAppointments(c.Context(), email, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list appointments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list appointments",
		})
	}

	return c.JSON(dto.AppointmentListResponse{Appointments: appointments})
}

// RequestCallback godoc
// @Summary Request a callback from the clinic
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.CallbackRequest true "Callback"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/callback [post]
func (h *BookingHandler) RequestCallback(c *fiber.Ctx) error {
	var req dto.CallbackRequest
	if ok, err := parseBody(c, &req, "No data provided"); !ok {
		return err
	}

	if err := h.bookingService.RequestCallback(c.Context(), &req); err != nil {
		h.logger.Error("Error saving callback or sending email", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save callback or send email",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Callback request saved and email sent"})
}
