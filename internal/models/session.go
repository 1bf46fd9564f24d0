package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record of one device login. IssuedAt equals the
// issue time of the only refresh token currently accepted for the device.
type Session struct {
	DeviceID    string    `db:"device_id"    json:"deviceId"`
	UserID      uuid.UUID `db:"user_id"      json:"userId"`
	IssuedAt    time.Time `db:"issued_at"    json:"issuedAt"`
	ExpiresAt   time.Time `db:"expires_at"   json:"expiresAt"`
	IP          string    `db:"ip"           json:"ip"`
	DeviceLabel string    `db:"device_label" json:"deviceLabel"`
}

type Attempt struct {
	IP        string    `db:"ip"         json:"ip"`
	Route     string    `db:"route"      json:"route"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
