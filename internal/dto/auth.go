package dto

import "time"

type LoginRequest struct {
	LoginOrEmail string `json:"loginOrEmail" validate:"required,login_or_email"`
	Password     string `json:"password"     validate:"required,min=6,max=20"`
}

type RegistrationRequest struct {
	Login    string `json:"login"    validate:"required,min=3,max=10,login"`
	Password string `json:"password" validate:"required,min=6,max=20"`
	Email    string `json:"email"    validate:"required,email_pattern"`
}

type ConfirmationRequest struct {
	Code string `json:"code" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email_pattern"`
}

type NewPasswordRequest struct {
	NewPassword  string `json:"newPassword"  validate:"required,min=6,max=20"`
	RecoveryCode string `json:"recoveryCode" validate:"required"`
}

type TokenPair struct {
	Access           string
	Refresh          string
	RefreshExpiresAt time.Time
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

type FieldErrorsResponse struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}
