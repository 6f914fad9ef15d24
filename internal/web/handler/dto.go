package handler

// RegisterRequest is the registration form body
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the login form body
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RecipientRequest is the recipient step of the send-money wizard
type RecipientRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// AmountRequest is the amount step of the send-money wizard. Amount is a
// pointer so a missing value is distinguishable from zero.
type AmountRequest struct {
	Amount *float64 `json:"amount"`
	Remark string   `json:"remark"`
}

// PinRequest is the confirmation step of the send-money wizard
type PinRequest struct {
	Pin string `json:"pin"`
}
