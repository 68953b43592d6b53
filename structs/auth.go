package structs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	OTP      string `json:"otp"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Theme          string `json:"theme"`
	EmailReminders *bool  `json:"emailReminders"`
	ProfilePicture string `json:"profilePicture"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}
