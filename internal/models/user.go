package models

import "time"

// User is a stored account record. PasswordHash never serializes; the user
// service additionally blanks it before handing records to callers outside
// the credential-verification path.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  *string   `json:"display_name,omitempty"`
	Country      *string   `json:"country,omitempty"`
	State        *string   `json:"state,omitempty"`
	City         *string   `json:"city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
