package dto

import (
	"time"

	"github.com/google/uuid"
)

type DeviceRequest struct {
	IP string `json:"ip"`
	UA string `json:"ua"`
}

type DeviceResponse struct {
	IP             string    `json:"ip"`
	Title          string    `json:"title"`
	LastActiveDate time.Time `json:"lastActiveDate"`
	DeviceID       string    `json:"deviceId"`
}

// SessionInfo identifies the device session a refresh token was accepted for.
// IssuedAt is the session issue time observed while the token was checked.
type SessionInfo struct {
	UserID   uuid.UUID `json:"userId"`
	DeviceID string    `json:"deviceId"`
	IssuedAt time.Time `json:"-"`
}
