package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `db:"id"`
	Name           string     `db:"name"`
	Username       string     `db:"username"`
	Email          string     `db:"email"`
	Password       string     `db:"password"`
	Bio            string     `db:"bio"`
	ProfilePicture string     `db:"profile_picture"`
	EmailVerified  bool       `db:"email_verified"`
	VerifiedAt     *time.Time `db:"verified_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// ProfileUpdate holds the optional fields of a profile edit. Nil means unchanged.
type ProfileUpdate struct {
	Username       *string
	Bio            *string
	ProfilePicture *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Bio == nil && u.ProfilePicture == nil
}
