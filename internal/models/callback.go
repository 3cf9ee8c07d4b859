package models

import (
	"time"

	"github.com/google/uuid"
)

type CallbackRequest struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Message   string    `db:"message"`
	Notified  bool      `db:"notified"`
	CreatedAt time.Time `db:"created_at"`
}
