package service

import (
	"time"

	"telephysio/internal/dto"
	"telephysio/internal/models"
)

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		EmailVerified:  u.EmailVerified,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func toAppointmentResponse(a *models.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Age:       a.Age,
		Gender:    a.Gender,
		Condition: a.Condition,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
