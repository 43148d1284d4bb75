package requests

type DeleteUser struct {
	Email string `json:"email" validate:"required,email"`
}
