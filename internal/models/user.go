package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account together with its single confirmation code slot. The
// slot is shared by registration confirmation and password recovery, so
// regenerating a code for one flow invalidates a pending code of the other.
type User struct {
	ID               uuid.UUID  `db:"id"                json:"id"`
	Login            string     `db:"login"             json:"login"`
	Email            string     `db:"email"             json:"email"`
	Password         string     `db:"password"          json:"-"`
	ConfirmationCode *string    `db:"confirmation_code" json:"-"`
	CodeExpiresAt    *time.Time `db:"code_expires_at"   json:"-"`
	IsEmailVerified  bool       `db:"is_email_verified" json:"isEmailVerified"`
	CreatedAt        time.Time  `db:"created_at"        json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at"        json:"updatedAt"`
}
