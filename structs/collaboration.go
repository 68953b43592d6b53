package structs

type ShareRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}
