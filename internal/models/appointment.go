package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Age       string    `db:"age"`
	Gender    string    `db:"gender"`
	Condition string    `db:"condition"`
	CreatedAt time.Time `db:"created_at"`
}
