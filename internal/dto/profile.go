package dto

// UpdateProfileRequest is a partial update; absent fields are left unchanged.
type UpdateProfileRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=1,max=64"`
	Bio            *string `json:"bio" validate:"omitempty,max=1000"`
	ProfilePicture *string `json:"profilePicture"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}
