package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"telephysio/internal/dto"
	"telephysio/internal/models"
	"telephysio/pkg/mailer"
	"telephysio/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyRequest = errors.New("no data provided")

type BookingService struct {
	appointments AppointmentStore
	callbacks    CallbackStore
	mailer       mailer.Sender
	notifyEmail  string
	logger       *zap.Logger
}

func NewBookingService(
	appointments AppointmentStore,
	callbacks CallbackStore,
	sender mailer.Sender,
	notifyEmail string,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		appointments: appointments,
		callbacks:    callbacks,
		mailer:       sender,
		notifyEmail:  notifyEmail,
		logger:       logger,
	}
}

func (s *BookingService) BookAppointment(ctx context.Context, req *dto.AppointmentRequest) error {
	if req.Empty() {
		return ErrEmptyRequest
	}

	appointment := &models.Appointment{
		ID:        uuid.New(),
		Name:      cleanText(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     cleanText(req.Phone),
		Age:       cleanText(req.Age),
		Gender:    cleanText(req.Gender),
		Condition: cleanText(req.Condition),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return fmt.Errorf("failed to save appointment: %w", err)
	}

	s.logger.Info("Appointment saved", zap.String("appointment_id", appointment.ID.String()))
	return nil
}

// ListAppointments returns the appointments booked under email, newest first.
func (s *BookingService) ListAppointments(ctx context.Context, email string, limit, offset int) ([]dto.AppointmentResponse, error) {
	appointments, err := s.appointments.ListByEmail(ctx, email, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// RequestCallback stores the request and notifies staff. Both must succeed.
func (s *BookingService) RequestCallback(ctx context.Context, req *dto.CallbackRequest) error {
	cb := &models.CallbackRequest{
		ID:        uuid.New(),
		Name:      cleanText(req.Name),
		Phone:     cleanText(req.Phone),
		Message:   cleanText(req.Message),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.callbacks.Create(ctx, cb); err != nil {
		return fmt.Errorf("failed to save callback: %w", err)
	}

	msg := mailer.Message{
		Subject: "New Callback Request",
		Body:    fmt.Sprintf("Name: %s\nPhone: %s\nMessage: %s", cb.Name, cb.Phone, cb.Message),
	}
	if s.notifyEmail != "" {
		msg.To = []string{s.notifyEmail}
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.MailFailures.WithLabelValues("callback").Inc()
		return fmt.Errorf("failed to send callback email: %w", err)
	}

	if err := s.callbacks.MarkNotified(ctx, cb.ID); err != nil {
		s.logger.Warn("Failed to mark callback notified", zap.String("callback_id", cb.ID.String()), zap.Error(err))
	}
	return nil
}
