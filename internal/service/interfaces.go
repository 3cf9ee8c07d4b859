package service

import (
	"context"

	"telephysio/internal/models"

	"github.com/google/uuid"
)

// UserStore is the persistence the account and profile services need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	MarkVerified(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, a *models.Appointment) error
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*models.Appointment, error)
}

type CallbackStore interface {
	Create(ctx context.Context, cb *models.CallbackRequest) error
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

type FAQStore interface {
	List(ctx context.Context) ([]*models.FAQEntry, error)
}
