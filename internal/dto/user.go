package dto

import "github.com/google/uuid"

type MeResponse struct {
	Email  string    `json:"email"`
	Login  string    `json:"login"`
	UserID uuid.UUID `json:"userId"`
}
