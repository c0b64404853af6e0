package models

import (
	"strings"
	"time"
)

// AdminUserID is the id of the privileged account: the first user ever
// registered. Positional rather than role-based authorization, kept as-is.
const AdminUserID = 1

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// IsAdmin reports whether the user holds the privileged identity.
func (u *User) IsAdmin() bool {
	return u.ID == AdminUserID
}
