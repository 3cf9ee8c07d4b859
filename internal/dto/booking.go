package dto

type AppointmentRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Condition string `json:"condition"`
}

// Empty reports whether no field was supplied.
func (r AppointmentRequest) Empty() bool {
	return r == AppointmentRequest{}
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Condition string `json:"condition"`
	CreatedAt string `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type CallbackRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
}
